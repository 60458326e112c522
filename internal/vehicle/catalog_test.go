package vehicle

import (
	"errors"
	"testing"

	"github.com/RozmiDan/racing_simulator/internal/entity"
)

func names(vs []entity.Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForOrder(t *testing.T) {
	groundNames := []string{SevenLeagueBoots, PumpkinCarriage, ChickenLeggedHut, Centaur}
	airNames := []string{BabaYagaMortar, MagicBroom, FlyingCarpet, FlyingShip}

	for _, test := range []struct {
		category entity.Category
		want     []string
	}{
		{entity.CategoryGround, groundNames},
		{entity.CategoryAir, airNames},
		{entity.CategoryMixed, append(append([]string{}, groundNames...), airNames...)},
	} {
		vs, err := For(test.category)
		if err != nil {
			t.Fatal(err)
		}
		if got := names(vs); !equalNames(got, test.want) {
			t.Errorf("%s: expected %v, got %v", test.category, test.want, got)
		}
	}
}

func TestForKinds(t *testing.T) {
	gs, _ := For(entity.CategoryGround)
	for _, v := range gs {
		if !v.IsGround() || v.Speed <= 0 || v.RestInterval <= 0 || v.BaseRestDuration <= 0 {
			t.Errorf("bad ground vehicle: %+v", v)
		}
	}

	as, _ := For(entity.CategoryAir)
	for _, v := range as {
		if !v.IsAir() || v.Speed <= 0 || v.Rule == 0 {
			t.Errorf("bad air vehicle: %+v", v)
		}
	}
}

func TestForReturnsFreshSlice(t *testing.T) {
	first, _ := For(entity.CategoryMixed)
	first[0].Name = "changed"
	first[0].Speed = 1000

	second, _ := For(entity.CategoryMixed)
	if second[0].Name != SevenLeagueBoots || second[0].Speed != 15 {
		t.Errorf("catalog changed between calls: %+v", second[0])
	}
}

func TestForInvalidCategory(t *testing.T) {
	if _, err := For(entity.Category("water")); !errors.Is(err, entity.ErrInvalidCategory) {
		t.Errorf("expected invalid category, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	for _, test := range []struct {
		query string
		want  string
	}{
		{"Seven-League Boots", SevenLeagueBoots},
		{"seven league boots", SevenLeagueBoots},
		{"SevenLeagueBoots", SevenLeagueBoots},
		{"babayagamortar", BabaYagaMortar},
		{" flying_ship ", FlyingShip},
	} {
		v, err := Lookup(test.query)
		if err != nil {
			t.Errorf("%q: %v", test.query, err)
			continue
		}
		if v.Name != test.want {
			t.Errorf("%q: expected %s, got %s", test.query, test.want, v.Name)
		}
	}

	if _, err := Lookup("Sleigh"); !errors.Is(err, entity.ErrUnknownVehicle) {
		t.Errorf("expected unknown vehicle, got %v", err)
	}
}
