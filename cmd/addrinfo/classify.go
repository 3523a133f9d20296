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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VollmondT/libjuice/pkg/addr"
)

type classifyInfo struct {
	Address   string `json:"address"`
	Family    string `json:"family"`
	Len       int    `json:"len"`
	Port      uint16 `json:"port"`
	Local     bool   `json:"local"`
	Temporary bool   `json:"temporary"`
	Mapped    string `json:"mapped,omitempty"`
}

func newClassify() *cobra.Command {
	var flags struct {
		json bool
	}

	cmd := &cobra.Command{
		Use:   "classify [flags] <address>",
		Short: "Classify a transport endpoint address",
		Long: `'classify' parses an address in host:port representation and prints its
family, sockaddr length, port, and whether it is classified as local
(loopback or link-local) or as a temporary (privacy) IPv6 address.

For an IPv4 address the equivalent IPv4-mapped IPv6 form is shown as well.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := addr.Parse(args[0])
			if err != nil {
				return err
			}
			info := classifyInfo{
				Address:   a.String(),
				Family:    a.Family().String(),
				Len:       a.Len(),
				Port:      a.Port(),
				Local:     a.IsLocal(),
				Temporary: a.IsTempIPv6(),
			}
			if mapped := a; mapped.Family() == addr.INET {
				if _, ok := mapped.MapIPv6(); ok {
					info.Mapped = mapped.String()
				}
			}

			if flags.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address:   %s\n", info.Address)
			fmt.Fprintf(out, "family:    %s\n", info.Family)
			fmt.Fprintf(out, "len:       %d\n", info.Len)
			fmt.Fprintf(out, "port:      %d\n", info.Port)
			fmt.Fprintf(out, "local:     %t\n", info.Local)
			fmt.Fprintf(out, "temporary: %t\n", info.Temporary)
			if info.Mapped != "" {
				fmt.Fprintf(out, "mapped:    %s\n", info.Mapped)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.json, "json", false, "Write the output as machine readable json")
	return cmd
}
