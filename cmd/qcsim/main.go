package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/compare"
	"github.com/qcfin/qcsim/internal/config"
	"github.com/qcfin/qcsim/internal/domain"
	"github.com/qcfin/qcsim/internal/output"
	"github.com/qcfin/qcsim/internal/scenario"
	"github.com/qcfin/qcsim/internal/solver"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "qcsim",
	Short: "Quebec net income and cost-of-living simulator",
	Long:  "Net income, family benefits, child costs and life simulation for Quebec households",
}

// loadEngine builds the calculation engine from --params or the built-in
// defaults, wiring the debug logger when requested.
func loadEngine(cmd *cobra.Command) *calculation.Engine {
	params := config.DefaultParameters()

	paramsFile, _ := cmd.Flags().GetString("params")
	if paramsFile != "" {
		parser := config.NewParameterParser()
		loaded, err := parser.LoadFromFile(paramsFile)
		if err != nil {
			log.Fatal(err)
		}
		params = loaded
	}

	engine := calculation.NewEngine(params)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func parseSalary(arg string) decimal.Decimal {
	salary, err := decimal.NewFromString(arg)
	if err != nil {
		log.Fatalf("invalid salary %q: %v", arg, err)
	}
	return salary
}

func parseAgesFlag(cmd *cobra.Command) []int {
	ages, _ := cmd.Flags().GetIntSlice("ages")
	for _, age := range ages {
		if age < 0 || age > 17 {
			log.Fatalf("child age %d out of range (0 to 17)", age)
		}
	}
	return ages
}

var netCmd = &cobra.Command{
	Use:   "net [gross-salary]",
	Short: "Compute net income from a gross annual salary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)
		result := engine.NetIncome(parseSalary(args[0]))

		fmt.Printf("Revenu brut:          %s\n", output.FormatCurrency(result.GrossAnnual))
		fmt.Printf("Impôt fédéral:        %s\n", output.FormatCurrency(result.FederalTax))
		fmt.Printf("Impôt du Québec:      %s\n", output.FormatCurrency(result.ProvincialTax))
		fmt.Printf("RRQ:                  %s\n", output.FormatCurrency(result.QPPContribution))
		fmt.Printf("RQAP:                 %s\n", output.FormatCurrency(result.QPIPContribution))
		fmt.Printf("Assurance-emploi:     %s\n", output.FormatCurrency(result.EIContribution))
		fmt.Printf("Retenues totales:     %s\n", output.FormatCurrency(result.TotalDeductions))
		fmt.Printf("Revenu net annuel:    %s\n", output.FormatCurrency(result.NetAnnual))
		fmt.Printf("Revenu net mensuel:   %s\n", output.FormatCurrency(result.NetMonthly))
		fmt.Printf("Paie aux 2 semaines:  %s\n", output.FormatCurrency(result.NetBiWeekly))
		fmt.Printf("Taux effectif:        %s\n", output.FormatPercent(result.EffectiveTaxRate))
		fmt.Printf("Taux marginal:        %s\n", output.FormatPercent(result.MarginalTaxRate))
	},
}

var benefitsCmd = &cobra.Command{
	Use:   "benefits",
	Short: "Compute federal and Quebec child benefits",
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)

		income, _ := cmd.Flags().GetString("income")
		custodyStr, _ := cmd.Flags().GetString("custody")
		custody, err := domain.ParseCustody(custodyStr)
		if err != nil {
			log.Fatal(err)
		}

		in := domain.BenefitsInput{
			FamilyIncome: parseSalary(income),
			Custody:      custody,
		}
		for _, age := range parseAgesFlag(cmd) {
			if domain.BandForAge(age) == domain.AgeUnder6 {
				in.ChildrenUnder6++
			} else {
				in.Children6To17++
			}
		}

		result := engine.FamilyBenefits(in)
		fmt.Printf("Allocation fédérale:  %s / mois\n", output.FormatCurrency(result.FederalMonthly))
		fmt.Printf("Allocation du Québec: %s / mois\n", output.FormatCurrency(result.QuebecMonthly))
		fmt.Printf("Total mensuel:        %s\n", output.FormatCurrency(result.TotalMonthly))
		fmt.Printf("Total annuel:         %s\n", output.FormatCurrency(result.TotalYearly))
	},
}

var childCostCmd = &cobra.Command{
	Use:   "childcost",
	Short: "Estimate the net monthly cost of children",
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)

		income, _ := cmd.Flags().GetString("income")
		subsidized, _ := cmd.Flags().GetBool("subsidized")

		result := engine.ChildCosts(domain.ChildCostInput{
			Ages:         parseAgesFlag(cmd),
			HasSubsidy:   subsidized,
			FamilyIncome: parseSalary(income),
		})

		fmt.Printf("Coûts de base:        %s / mois\n", output.FormatCurrency(result.BaseMonthly))
		fmt.Printf("Frais de garde:       %s / mois\n", output.FormatCurrency(result.DaycareMonthly))
		fmt.Printf("Coût brut:            %s / mois\n", output.FormatCurrency(result.TotalMonthly))
		fmt.Printf("Allocations:          %s / an\n", output.FormatCurrency(result.TotalBenefits))
		fmt.Printf("Coût net:             %s / mois\n", output.FormatCurrency(result.NetMonthlyCost))
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [gross-salary]",
	Short: "Run the full life simulation for a city and household",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)

		city, _ := cmd.Flags().GetString("city")
		partner, _ := cmd.Flags().GetBool("partner")
		car, _ := cmd.Flags().GetBool("car")
		subsidy, _ := cmd.Flags().GetBool("subsidized")

		result := engine.Simulate(calculation.SimulationInput{
			GrossSalary: parseSalary(args[0]),
			CityID:      city,
			Household: domain.Household{
				HasPartner: partner,
				HasCar:     car,
				Ages:       parseAgesFlag(cmd),
				HasSubsidy: subsidy,
			},
		})
		if result == nil {
			log.Fatalf("simulation failed: check the salary and city (%q)", city)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		renderer := output.GetRendererByName(outputFormat)
		if renderer == nil {
			log.Fatalf("unknown output format %q (console, json, csv)", outputFormat)
		}
		data, err := renderer.Render(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))

		if name, _ := cmd.Flags().GetString("save"); name != "" {
			saveScenario(name, args[0], city, partner, car, subsidy, parseAgesFlag(cmd))
		}
	},
}

func saveScenario(name, salary, city string, partner, car, subsidy bool, ages []int) {
	path, err := scenario.DefaultPath()
	if err != nil {
		log.Fatal(err)
	}
	store := scenario.NewFileStore(path)
	err = store.Save(domain.Scenario{
		Name:        name,
		GrossSalary: salary,
		CityID:      city,
		HasPartner:  partner,
		HasCar:      car,
		Ages:        ages,
		HasSubsidy:  subsidy,
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nScénario %q enregistré.\n", name)
}

var compareCmd = &cobra.Command{
	Use:   "compare [gross-salary]",
	Short: "Compare the same salary and household across cities",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)

		partner, _ := cmd.Flags().GetBool("partner")
		car, _ := cmd.Flags().GetBool("car")
		subsidy, _ := cmd.Flags().GetBool("subsidized")
		base, _ := cmd.Flags().GetString("base")
		citiesStr, _ := cmd.Flags().GetString("cities")

		var cityIDs []string
		if citiesStr != "" {
			for _, id := range strings.Split(citiesStr, ",") {
				cityIDs = append(cityIDs, strings.TrimSpace(id))
			}
		}

		comparator := compare.NewCityComparator(engine)
		comparison, err := comparator.Compare(context.Background(),
			parseSalary(args[0]),
			domain.Household{
				HasPartner: partner,
				HasCar:     car,
				Ages:       parseAgesFlag(cmd),
				HasSubsidy: subsidy,
			},
			compare.Options{BaseCityID: base, CityIDs: cityIDs})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Print(compare.NewTableFormatter().Format(comparison))
	},
}

var requiredCmd = &cobra.Command{
	Use:   "required [target-amount]",
	Short: "Find the gross salary needed for a target income",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)

		targetStr, _ := cmd.Flags().GetString("target")
		city, _ := cmd.Flags().GetString("city")
		partner, _ := cmd.Flags().GetBool("partner")
		car, _ := cmd.Flags().GetBool("car")
		subsidy, _ := cmd.Flags().GetBool("subsidized")

		result, err := solver.NewDefaultSolver(engine).Solve(context.Background(), solver.Request{
			Target:      solver.Target(targetStr),
			TargetValue: parseSalary(args[0]),
			CityID:      city,
			Household: domain.Household{
				HasPartner: partner,
				HasCar:     car,
				Ages:       parseAgesFlag(cmd),
				HasSubsidy: subsidy,
			},
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Salaire brut requis:  %s\n", output.FormatCurrency(result.GrossSalary))
		fmt.Printf("Valeur atteinte:      %s (cible %s)\n",
			output.FormatCurrency(result.AchievedValue),
			output.FormatCurrency(result.TargetValue))
	},
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the known cities and their baseline costs",
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine(cmd)
		fmt.Printf("%-16s%-18s%14s%14s\n", "ID", "Ville", "Loyer moyen", "Épicerie")
		for _, city := range engine.Cities() {
			fmt.Printf("%-16s%-18s%14s%14s\n",
				city.ID, city.Name,
				output.FormatCurrency(city.AvgRent),
				output.FormatCurrency(city.MonthlyGrocery))
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [params-file]",
	Short: "Validate a parameters file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewParameterParser()
		params, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: paramètres valides pour l'année %d\n", args[0], params.Metadata.TaxYear)
	},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved simulation scenarios",
}

func scenarioStore() *scenario.FileStore {
	path, err := scenario.DefaultPath()
	if err != nil {
		log.Fatal(err)
	}
	return scenario.NewFileStore(path)
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		scenarios, err := scenarioStore().List()
		if err != nil {
			log.Fatal(err)
		}
		if len(scenarios) == 0 {
			fmt.Println("Aucun scénario enregistré.")
			return
		}
		for _, sc := range scenarios {
			fmt.Printf("%-24s %10s $ %-16s enfants: %v\n", sc.Name, sc.GrossSalary, sc.CityID, sc.Ages)
		}
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Re-run a saved scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenarios, err := scenarioStore().List()
		if err != nil {
			log.Fatal(err)
		}
		for _, sc := range scenarios {
			if sc.Name != args[0] {
				continue
			}
			engine := loadEngine(cmd)
			result := engine.Simulate(calculation.SimulationInput{
				GrossSalary: parseSalary(sc.GrossSalary),
				CityID:      sc.CityID,
				Household: domain.Household{
					HasPartner: sc.HasPartner,
					HasCar:     sc.HasCar,
					Ages:       sc.Ages,
					HasSubsidy: sc.HasSubsidy,
				},
			})
			if result == nil {
				log.Fatalf("scenario %q no longer simulates: check its city", sc.Name)
			}
			data, err := output.ConsoleRenderer{}.Render(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
			return
		}
		log.Fatalf("scenario %q not found", args[0])
	},
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := scenarioStore().Delete(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scénario %q supprimé.\n", args[0])
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "qcsim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().String("params", "", "Path to a parameters YAML file (default: built-in rates)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	benefitsCmd.Flags().String("income", "0", "Family net income")
	benefitsCmd.Flags().IntSlice("ages", nil, "Children ages, comma separated")
	benefitsCmd.Flags().String("custody", "full", "Custody arrangement (full, shared)")

	childCostCmd.Flags().String("income", "0", "Family net income")
	childCostCmd.Flags().IntSlice("ages", nil, "Children ages, comma separated")
	childCostCmd.Flags().Bool("subsidized", false, "Use subsidized daycare rates")

	simulateCmd.Flags().String("city", "montreal", "City ID (see 'qcsim cities')")
	simulateCmd.Flags().Bool("partner", false, "Household has a partner")
	simulateCmd.Flags().Bool("car", false, "Household owns a car")
	simulateCmd.Flags().Bool("subsidized", false, "Use subsidized daycare rates")
	simulateCmd.Flags().IntSlice("ages", nil, "Children ages, comma separated")
	simulateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	simulateCmd.Flags().String("save", "", "Save the inputs as a named scenario")

	compareCmd.Flags().Bool("partner", false, "Household has a partner")
	compareCmd.Flags().Bool("car", false, "Household owns a car")
	compareCmd.Flags().Bool("subsidized", false, "Use subsidized daycare rates")
	compareCmd.Flags().IntSlice("ages", nil, "Children ages, comma separated")
	compareCmd.Flags().String("base", "", "City ID to measure deltas against (default: top ranked)")
	compareCmd.Flags().String("cities", "", "Comma-separated city IDs to compare (default: all)")

	requiredCmd.Flags().String("target", "net-annual", "Solve target (net-annual, net-monthly, disposable)")
	requiredCmd.Flags().String("city", "montreal", "City ID, used with the disposable target")
	requiredCmd.Flags().Bool("partner", false, "Household has a partner")
	requiredCmd.Flags().Bool("car", false, "Household owns a car")
	requiredCmd.Flags().Bool("subsidized", false, "Use subsidized daycare rates")
	requiredCmd.Flags().IntSlice("ages", nil, "Children ages, comma separated")

	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
	scenarioCmd.AddCommand(scenarioDeleteCmd)

	rootCmd.AddCommand(netCmd)
	rootCmd.AddCommand(benefitsCmd)
	rootCmd.AddCommand(childCostCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(requiredCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
