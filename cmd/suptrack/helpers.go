package suptrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/app"
	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
	"github.com/daniazubel1/suptrack/internal/store"
)

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return "", err
	}
	if cfg.StorePath != "" {
		return cfg.StorePath, nil
	}
	return app.DefaultStorePath()
}

// withEngine opens the store, constructs the engine, runs the command body
// and flushes deferred achievement evaluation at the batch boundary.
func withEngine(run func(*service.Engine) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	engine := service.New(db)
	runErr := run(engine)
	engine.Flush()
	return runErr
}

// findSupplement resolves a command argument to a supplement by id or by
// case-insensitive name.
func findSupplement(engine *service.Engine, arg string) (model.Supplement, error) {
	if sup, ok := engine.FindSupplement(arg); ok {
		return sup, nil
	}
	needle := strings.ToLower(strings.TrimSpace(arg))
	for _, sup := range engine.Supplements() {
		if strings.ToLower(sup.Name) == needle {
			return sup, nil
		}
	}
	return model.Supplement{}, fmt.Errorf("no supplement matches %q", arg)
}

func parseDateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func validateClock(value string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	return nil
}

func printSupplementRow(cmd *cobra.Command, sup model.Supplement) {
	left := "-"
	if sup.ServingsLeft != nil {
		left = fmt.Sprintf("%d", *sup.ServingsLeft)
		if sup.ServingsPerContainer != nil {
			left = fmt.Sprintf("%d/%d", *sup.ServingsLeft, *sup.ServingsPerContainer)
		}
	}
	timing := sup.Timing
	if timing == "" {
		timing = model.TimingAny
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", sup.ID, sup.Name, timing, sup.Dosage, left)
}
