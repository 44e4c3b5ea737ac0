package narrative

import (
	"reflect"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func TestAnalyzeMood_DangerThresholds(t *testing.T) {
	t.Parallel()

	high := AnalyzeMood(&world.Chunk{Terrain: world.TerrainGrassland, LightLevel: 60, Moisture: 50, DangerLevel: 70})
	for _, tag := range []vocab.MoodTag{vocab.MoodDanger, vocab.MoodForeboding, vocab.MoodThreatening} {
		if !high[tag] {
			t.Errorf("danger 70: missing %q", tag)
		}
	}

	mid := AnalyzeMood(&world.Chunk{Terrain: world.TerrainGrassland, LightLevel: 60, Moisture: 50, DangerLevel: 40})
	if !mid[vocab.MoodThreatening] {
		t.Error("danger 40: missing threatening")
	}
	if mid[vocab.MoodDanger] || mid[vocab.MoodForeboding] {
		t.Error("danger 40: high-danger tags leaked in")
	}

	low := AnalyzeMood(&world.Chunk{Terrain: world.TerrainGrassland, LightLevel: 60, Moisture: 50, DangerLevel: 39})
	if low[vocab.MoodThreatening] {
		t.Error("danger 39: unexpected threatening")
	}
}

func TestAnalyzeMood_LightBandsExclusive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		light         int
		want, forbid  []vocab.MoodTag
	}{
		{10, []vocab.MoodTag{vocab.MoodDark, vocab.MoodGloomy, vocab.MoodMysterious}, []vocab.MoodTag{vocab.MoodVibrant}},
		{49, []vocab.MoodTag{vocab.MoodMysterious, vocab.MoodGloomy}, []vocab.MoodTag{vocab.MoodDark, vocab.MoodVibrant}},
		{50, nil, []vocab.MoodTag{vocab.MoodDark, vocab.MoodGloomy, vocab.MoodVibrant}},
		{80, []vocab.MoodTag{vocab.MoodVibrant, vocab.MoodPeaceful}, []vocab.MoodTag{vocab.MoodDark, vocab.MoodGloomy}},
	}
	for _, c := range cases {
		m := AnalyzeMood(&world.Chunk{Terrain: world.TerrainGrassland, LightLevel: c.light, Moisture: 50})
		for _, tag := range c.want {
			if !m[tag] {
				t.Errorf("light %d: missing %q", c.light, tag)
			}
		}
		for _, tag := range c.forbid {
			// Grassland contributes peaceful/vast only; the light bands are
			// the sole source of the forbidden tags here.
			if m[tag] {
				t.Errorf("light %d: unexpected %q", c.light, tag)
			}
		}
	}
}

func TestAnalyzeMood_UnsetTemperatureSkipped(t *testing.T) {
	t.Parallel()

	m := AnalyzeMood(&world.Chunk{Terrain: world.TerrainGrassland, LightLevel: 60, Moisture: 50})
	if m[vocab.MoodCold] || m[vocab.MoodHot] {
		t.Error("nil temperature contributed a temperature mood")
	}
}

func TestAnalyzeMood_DarkDangerousCave(t *testing.T) {
	t.Parallel()

	chunk := &world.Chunk{
		Terrain:     world.TerrainCave,
		LightLevel:  5,
		DangerLevel: 80,
		Moisture:    50,
	}
	m := AnalyzeMood(chunk)

	want := []vocab.MoodTag{
		vocab.MoodDark, vocab.MoodGloomy, vocab.MoodMysterious,
		vocab.MoodDanger, vocab.MoodForeboding, vocab.MoodThreatening,
		vocab.MoodConfined,
	}
	for _, tag := range want {
		if !m[tag] {
			t.Errorf("missing %q", tag)
		}
	}
	if m[vocab.MoodVibrant] || m[vocab.MoodPeaceful] {
		t.Error("bright moods in a dark cave")
	}
}

func TestAnalyzeMood_Deterministic(t *testing.T) {
	t.Parallel()

	temp := 42.0
	chunk := &world.Chunk{
		Terrain: world.TerrainDesert, LightLevel: 90, Moisture: 10,
		Temperature: &temp, MagicAffinity: 45, HumanPresence: 5,
	}
	a := AnalyzeMood(chunk).Tags()
	b := AnalyzeMood(chunk).Tags()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("mood analysis not deterministic: %v vs %v", a, b)
	}
}
