// Copyright 2026 VollmondT
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command addrinfo inspects, classifies and resolves transport endpoint
// addresses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VollmondT/libjuice/pkg/log"
)

func main() {
	defer log.HandlePanic()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "addrinfo",
		Short:         "Inspect, classify and resolve transport endpoint addresses",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Setup(log.Config{
				Console: log.ConsoleConfig{Level: logLevel},
			})
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log.level", "info",
		"Console logging level (debug|info|warn|error)")
	cmd.AddCommand(
		newResolve(),
		newClassify(),
	)
	return cmd
}
