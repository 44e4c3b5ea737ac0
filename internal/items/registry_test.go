package items

import "testing"

func TestRegistryGet_CaseInsensitive(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	def, ok := r.Get("Berries")
	if !ok || def.ID != "berries" {
		t.Fatalf("Get(Berries) = %+v/%v", def, ok)
	}
	if def.BaseQuantity.Min < 1 {
		t.Errorf("berries base quantity minimum %d, want >= 1", def.BaseQuantity.Min)
	}

	if _, ok := r.Get("plutonium"); ok {
		t.Error("unknown item resolved")
	}
}

func TestDefaultRegistry_CarriesRelics(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	spawnable, relics := 0, 0
	for _, d := range r.All() {
		if d.Name.Resolve("en") == "" || d.Name.Resolve("vi") == "" {
			t.Errorf("%s: missing localized name", d.ID)
		}
		if d.Spawnable {
			spawnable++
		} else {
			relics++
		}
	}
	if spawnable == 0 || relics == 0 {
		t.Errorf("registry has %d spawnable and %d relic items, want both populated", spawnable, relics)
	}
}
