package extension

import "github.com/Gauthampro7/vedic-astrology-app/internal/chart"

// The built-in modules are extension points, not finished features: each
// reports its inputs and a stub status until real calculation logic lands.

type compatibilityModule struct{}

func (compatibilityModule) Name() string        { return "Compatibility Analysis" }
func (compatibilityModule) Version() string     { return "1.0" }
func (compatibilityModule) Description() string { return "Calculate compatibility between two people" }

func (compatibilityModule) Calculate(c *chart.Chart) (map[string]any, error) {
	return map[string]any{
		"status": "not_implemented",
		"chart":  c.BirthInfo.Place,
	}, nil
}

type yogaModule struct{}

func (yogaModule) Name() string        { return "Yoga Calculator" }
func (yogaModule) Version() string     { return "1.0" }
func (yogaModule) Description() string { return "Calculate yogas and auspicious combinations" }

func (yogaModule) Calculate(c *chart.Chart) (map[string]any, error) {
	return map[string]any{
		"status":      "not_implemented",
		"place":       c.BirthInfo.Place,
		"yogas_found": []string{},
	}, nil
}

type bhavaModule struct{}

func (bhavaModule) Name() string        { return "Bhava Chart" }
func (bhavaModule) Version() string     { return "1.0" }
func (bhavaModule) Description() string { return "Calculate Bhava (house) chart and house cusps" }

func (bhavaModule) Calculate(c *chart.Chart) (map[string]any, error) {
	// The assembled cusps are already available; real bhava strength
	// analysis is the part still to come.
	houses := make(map[int]float64, len(c.Houses))
	for h, cusp := range c.Houses {
		houses[h] = cusp
	}
	return map[string]any{
		"status": "not_implemented",
		"place":  c.BirthInfo.Place,
		"houses": houses,
	}, nil
}

type navamsaModule struct{}

func (navamsaModule) Name() string        { return "Navamsa Chart" }
func (navamsaModule) Version() string     { return "1.0" }
func (navamsaModule) Description() string { return "Calculate Navamsa (D9) divisional chart" }

func (navamsaModule) Calculate(c *chart.Chart) (map[string]any, error) {
	return map[string]any{
		"status":          "not_implemented",
		"place":           c.BirthInfo.Place,
		"navamsa_planets": map[string]any{},
	}, nil
}
