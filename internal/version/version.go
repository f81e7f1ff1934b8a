package version

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X github.com/FentusGames/StockPile/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки - дни от первого релиза плагина
var buildEpoch = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

type Build struct {
	Number int
	Date   string
	Commit string
	Dirty  bool
	Err    error
}

// BuildNumber считает номер сборки по BuildDate
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current собирает информацию о сборке. Коммит без ldflags берется из vcs-меток go build.
func Current() Build {
	b := Build{Date: BuildDate, Commit: BuildCommit}
	b.Number, b.Err = BuildNumber(BuildDate)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = s.Value
				}
			case "vcs.modified":
				b.Dirty = s.Value == "true"
			}
		}
	}
	return b
}

// Fields - поля для стартовой строки лога
func (b Build) Fields() logrus.Fields {
	f := logrus.Fields{
		"build":  b.Number,
		"date":   coalesce(b.Date, "unknown"),
		"commit": coalesce(b.Commit, "unknown"),
	}
	if b.Dirty {
		f["dirty"] = true
	}
	return f
}

func (b Build) String() string {
	if b.Err != nil {
		return fmt.Sprintf("StockPile dev build (%s), commit %s", b.Err, coalesce(b.Commit, "unknown"))
	}
	return fmt.Sprintf("StockPile build %d (%s), commit %s", b.Number, b.Date, coalesce(b.Commit, "unknown"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
