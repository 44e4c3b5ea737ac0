package vocab

import "github.com/ngoccc0/dreamland-engine-sub007/internal/world"

// Vietnamese biome tables. Terrains not authored here fall back to the
// English tables at lookup time.
var biomesVI = map[world.Terrain]*Biome{
	world.TerrainForest: {
		Terrain: world.TerrainForest,
		Icon:    "🌲",
		Pools: Pools{
			Adjectives: []string{"cổ thụ", "rậm rạp", "u tối", "phủ rêu", "cao vút"},
			Features:   []string{"những gốc sồi xù xì", "một lùm dương xỉ um tùm", "một thân cây đổ khổng lồ", "bụi rậm chằng chịt", "một lối mòn của hươu nai"},
			Smells:     []string{"đất ẩm", "nhựa thông", "lá mục", "nấm dại"},
			Sounds:     []string{"tiếng chim hót trên cao", "cành cây kẽo kẹt", "lá cây xào xạc"},
			Sky:        []string{"bầu trời lấp ló qua tán lá", "những vệt nắng xuyên kẽ lá"},
		},
		Templates: []Template{
			{ID: "forest-vi-open-1", Type: TypeOpening, Weight: 1,
				Text: "Bạn bước dưới những tán cây {{adjectives}}, nơi {{features}} chen kín lối đi."},
			{ID: "forest-vi-open-dark", Type: TypeOpening, Moods: []MoodTag{MoodDark, MoodGloomy},
				Text: "Rừng cây ép sát lại và {light_level_detail}."},
			{ID: "forest-vi-env-1", Type: TypeEnvironmentDetail,
				Text: "Qua {{features}}, mặt đất trũng xuống dưới {{sky}}."},
			{ID: "forest-vi-sense-1", Type: TypeSensoryDetail,
				Text: "Mùi {{smells}} lẩn khuất trong không khí, và bạn nghe thấy {{sounds}}."},
		},
	},

	world.TerrainCave: {
		Terrain: world.TerrainCave,
		Icon:    "🕳️",
		Pools: Pools{
			Adjectives: []string{"tối đen", "ẩm ướt", "vang vọng", "chật hẹp", "cổ xưa"},
			Features:   []string{"rừng thạch nhũ", "một khe nứt đen ngòm dưới sàn", "một hồ nước ngầm phẳng lặng", "một lối đi chỉ vừa lách qua"},
			Smells:     []string{"đá vôi ẩm", "không khí lạnh lẽo vị khoáng", "bụi lâu năm"},
			Sounds:     []string{"tiếng nước nhỏ giọt đâu đó trong bóng tối", "tiếng bước chân bạn vọng lại", "sự im lặng tuyệt đối"},
			Sky:        []string{"vòm hang mất hút trong bóng tối", "khối đá đè nặng trên đầu"},
		},
		Templates: []Template{
			{ID: "cave-vi-open-1", Type: TypeOpening, Weight: 1,
				Text: "Lối đi mở ra một khoảng {{adjectives}}, và {light_level_detail}."},
			{ID: "cave-vi-env-1", Type: TypeEnvironmentDetail,
				Text: "Ánh sáng của bạn soi thấy {{features}} dưới {{sky}}."},
			{ID: "cave-vi-sense-1", Type: TypeSensoryDetail,
				Text: "Không khí sặc mùi {{smells}}; {{sounds}} là âm thanh duy nhất."},
		},
	},

	world.TerrainDesert: {
		Terrain: world.TerrainDesert,
		Icon:    "🏜️",
		Pools: Pools{
			Adjectives: []string{"cháy nắng", "cằn cỗi", "lung linh hơi nóng", "khô khốc"},
			Features:   []string{"một dải đồi cát", "nền đất nứt nẻ", "một bụi gai trơ trụi", "mỏm đá bị gió bào mòn"},
			Smells:     []string{"đá nóng", "bụi khô"},
			Sounds:     []string{"cát rít qua mặt đất", "một sự tĩnh lặng mênh mông", "gió rền rĩ trên đồi cát"},
			Sky:        []string{"bầu trời trắng lóa khắc nghiệt", "chân trời nhòe trong hơi nóng"},
		},
		Templates: []Template{
			{ID: "desert-vi-open-1", Type: TypeOpening, Weight: 1,
				Text: "Hoang mạc {{adjectives}} trải ra trước mắt dưới {{sky}}."},
			{ID: "desert-vi-env-1", Type: TypeEnvironmentDetail,
				Text: "Bạn đi qua {{features}}, và {temp_detail}."},
			{ID: "desert-vi-sense-1", Type: TypeSensoryDetail,
				Text: "Chỉ còn {{sounds}} và mùi {{smells}}."},
		},
	},

	world.TerrainSwamp: {
		Terrain: world.TerrainSwamp,
		Icon:    "🪷",
		Pools: Pools{
			Adjectives: []string{"tù đọng", "mù sương", "lợ mặn", "mục nát"},
			Features:   []string{"vũng nước đen tù đọng", "một thảm tảo xanh", "những thân cây chết ngập nửa", "một cầu ván đã sập từ lâu"},
			Smells:     []string{"mùi phân hủy", "bùn tanh", "nước tù"},
			Sounds:     []string{"ếch nhái kêu ran", "thứ gì đó trườn xuống nước", "bong bóng sủi lên từ bùn"},
			Sky:        []string{"một màn sương xám thấp", "ánh sáng lọc qua rêu rủ"},
		},
		Templates: []Template{
			{ID: "swamp-vi-open-1", Type: TypeOpening, Weight: 1,
				Text: "Bạn lội vào đầm lầy {{adjectives}}, nơi {{features}} chắn ngang lối."},
			{ID: "swamp-vi-env-1", Type: TypeEnvironmentDetail,
				Text: "Phía sau {{features}}, {moisture_detail}."},
			{ID: "swamp-vi-sense-1", Type: TypeSensoryDetail,
				Text: "Mùi {{smells}} nồng nặc khắp nơi; {{sounds}} vọng qua mặt nước."},
		},
	},

	world.TerrainGrassland: {
		Terrain: world.TerrainGrassland,
		Icon:    "🌾",
		Pools: Pools{
			Adjectives: []string{"trập trùng", "lộng gió", "thoáng đãng", "bạc màu nắng"},
			Features:   []string{"đồng cỏ cao ngang hông", "một gốc cây cô độc", "hoa dại rải rác", "một vệt đường mòn cũ"},
			Smells:     []string{"cỏ dập", "rơm khô", "bụi ấm"},
			Sounds:     []string{"gió rì rào qua đồng cỏ", "côn trùng rả rích", "tiếng diều hâu"},
			Sky:        []string{"bầu trời rộng mở", "mây kéo dài tới chân trời"},
		},
		Templates: []Template{
			{ID: "grass-vi-open-1", Type: TypeOpening, Weight: 1,
				Text: "Đồng cỏ {{adjectives}} trải dài dưới {{sky}}."},
			{ID: "grass-vi-env-1", Type: TypeEnvironmentDetail,
				Text: "Gần {{features}}, {temp_detail}."},
			{ID: "grass-vi-sense-1", Type: TypeSensoryDetail,
				Text: "Bạn ngửi thấy mùi {{smells}} trong gió; {{sounds}} vẳng lại từ xa."},
		},
	},
}

var keywordVariationsVI = map[string][]string{
	"hot":    {"oi bức", "thiêu đốt", "ngột ngạt", "hầm hập"},
	"cold":   {"buốt giá", "rét căm", "tê tái", "lạnh lẽo"},
	"mild":   {"dịu nhẹ", "ôn hòa", "êm ả"},
	"high":   {"nặng trĩu", "đặc quánh", "sũng nước"},
	"medium": {"đều đặn", "bình thường"},
	"low":    {"loãng", "thưa thớt", "mờ nhạt"},
	"dark":   {"đen kịt", "mờ tối", "âm u"},
	"bright": {"rực rỡ", "chói chang", "trong trẻo"},
}

var sentencePatternsVI = []string{
	"Không khí {adjective} phủ lên {feature}.",
	"Mọi thứ ở đây đều {adjective}, kể cả {feature}.",
	"Một sự tĩnh lặng {adjective} bao quanh {feature}.",
	"Bạn nhận ra quanh {feature} {adjective} đến nhường nào.",
	"{feature} nổi bật giữa khung cảnh {adjective}.",
}
