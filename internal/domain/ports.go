package domain

// Scenario is a saved set of simulation inputs. The engine never reads
// these back itself; persistence belongs to the presentation layer.
type Scenario struct {
	Name        string `yaml:"name" json:"name"`
	GrossSalary string `yaml:"gross_salary" json:"gross_salary"`
	CityID      string `yaml:"city_id" json:"city_id"`
	HasPartner  bool   `yaml:"has_partner" json:"has_partner"`
	HasCar      bool   `yaml:"has_car" json:"has_car"`
	Ages        []int  `yaml:"ages,flow" json:"ages"`
	HasSubsidy  bool   `yaml:"has_subsidy" json:"has_subsidy"`
	SavedAt     string `yaml:"saved_at" json:"saved_at"`
}

// ScenarioStore persists simulation scenarios. The core depends only on
// this port; the file-backed implementation lives outside the engine.
type ScenarioStore interface {
	Save(scenario Scenario) error
	List() ([]Scenario, error)
	Delete(name string) error
}

// ReportRenderer turns a simulation result into presentation bytes
// (console text, JSON, CSV, ...). Renderers must not alter or duplicate
// calculation logic.
type ReportRenderer interface {
	Name() string
	Render(result *SimulationResult) ([]byte, error)
}
