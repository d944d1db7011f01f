// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBindPFlags binds each flag to the viper key of the same name and
// panics if a binding fails.
func mustBindPFlags(v *viper.Viper, flags ...*pflag.Flag) {
	for _, f := range flags {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic("failed to bind pflag: " + err.Error())
		}
	}
}
