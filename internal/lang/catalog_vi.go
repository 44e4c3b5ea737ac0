package lang

// Vietnamese message table. Mirrors the English key set; any key missing
// here falls back to English at lookup time.
var messagesVI = map[string]string{
	"narrativeGeneric": "Bạn quan sát vùng đất xa lạ, cảnh giác với mọi điều bất thường.",
	"actionUnknown":    "Có điều gì đó xảy ra, nhưng bạn không rõ là gì.",

	"detailLightDark":   "bóng tối bủa vây quanh bạn",
	"detailLightDim":    "ánh sáng lờ mờ làm nhòe mọi đường nét",
	"detailLightNormal": "ánh sáng trải đều và rõ ràng",

	"detailTempFreezing": "cái lạnh cắt da cắt thịt",
	"detailTempCold":     "hơi lạnh phảng phất trong không khí",
	"detailTempMild":     "không khí dễ chịu và ôn hòa",
	"detailTempHot":      "hơi nóng bốc lên hầm hập",

	"detailMoistureParched": "mặt đất nứt nẻ khô cằn",
	"detailMoistureDry":     "không khí khô rát cổ họng",
	"detailMoistureNormal":  "không khí thoang thoảng hơi ẩm",
	"detailMoistureSoaked":  "mọi thứ sũng nước",

	"playerHealthCritical": "vết thương đau nhói theo từng cử động",
	"playerHealthLow":      "cơ thể bạn ê ẩm vì thương tích",
	"playerHealthSteady":   "bạn cảm thấy vững vàng",
	"playerHealthStrong":   "bạn cảm thấy khỏe khoắn và lành lặn",
	"playerStaminaSpent":   "đôi chân bạn run rẩy vì kiệt sức",
	"playerStaminaWinded":  "hơi thở bạn đứt quãng",
	"playerStaminaFresh":   "bước chân bạn nhẹ nhõm, sảng khoái",

	"attackCritFail":    "Đòn đánh của bạn trượt thảm hại khỏi {enemy}, khiến bạn mất thăng bằng.",
	"attackFail":        "Bạn vung đòn về phía {enemy}, nhưng cú đánh trượt đi vô hại.",
	"attackSuccess":     "Đòn tấn công của bạn trúng mạnh vào {enemy}.",
	"attackCritSuccess": "Bạn ra đòn chuẩn xác — một cú chí mạng xé toạc {enemy}!",
	"attackDamage":      "Cú đánh gây {damage} sát thương.",

	"enemyDefeated":  "{enemy} gục xuống và không đứng dậy nữa.",
	"enemyFled":      "{enemy} vùng chạy và biến mất phía xa.",
	"enemyRetaliate": "{enemy} phản công, cào rách bạn mất {damage} máu!",
	"enemyPrepares":  "{enemy} lượn vòng thủ thế, chuẩn bị lao vào.",

	"sensoryHeat":    "Mồ hôi cay xè mắt bạn trong cái nóng ngột ngạt.",
	"sensoryCold":    "Hơi thở bạn đọng khói trong không khí giá buốt.",
	"sensoryDark":    "Bóng tối nuốt chửng rìa tầm nhìn của bạn.",
	"sensoryDamp":    "Không khí ẩm ướt bám dính lấy da bạn.",
	"sensoryAmbient": "Cả vùng đất như nín thở quanh bạn.",

	"itemSelfSuccess":   "Bạn dùng {item}, cảm giác dễ chịu lan tỏa khắp người.",
	"itemSelfFailure":   "Bạn dùng {item}, nhưng dường như chẳng có gì xảy ra.",
	"itemTargetSuccess": "Bạn đưa {item} cho {target} — thành công rồi!",
	"itemTargetFailure": "Bạn đưa {item} cho {target}, nhưng nó chẳng thèm để ý.",

	"skillBackfire":  "{skill} vuột khỏi tầm kiểm soát và phản phệ, thiêu đốt bạn mất {damage} máu!",
	"skillFizzle":    "Bạn thi triển {skill}, nhưng nỗ lực tan biến vô ích.",
	"skillHeal":      "{skill} hàn gắn vết thương, hồi phục {amount} máu.",
	"skillDamage":    "{skill} bùng nổ vào {enemy}, gây {damage} sát thương.",
	"skillLifesteal": "Sinh lực cướp được chảy ngược về bạn, hồi phục {amount} máu.",

	"exploreFoundItem":    "Lục soát khu vực, bạn tìm thấy {item} ×{quantity}.",
	"exploreFoundNothing": "Bạn tìm kiếm kỹ lưỡng, nhưng không thấy gì hữu ích.",
	"exploreToastTitle":   "Nhặt được {item}",
}
