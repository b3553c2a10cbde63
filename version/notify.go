package version

import (
	"fmt"

	"github.com/framecast-cli/framecast/color"
	"github.com/framecast-cli/framecast/constant"
	"github.com/framecast-cli/framecast/icon"
	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/style"
	"github.com/spf13/viper"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		return
	}

	cmp, err := Compare(latest, constant.Version)
	if err != nil || cmp <= 0 {
		return
	}

	fmt.Printf(
		"\n%s New version available %s → %s\n%s\n",
		icon.Get(icon.Progress),
		style.Faint(constant.Version),
		style.Fg(color.Green)(latest),
		style.Faint("https://github.com/framecast-cli/framecast/releases/latest"),
	)
}
