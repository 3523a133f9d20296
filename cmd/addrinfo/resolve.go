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
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VollmondT/libjuice/pkg/addr"
	"github.com/VollmondT/libjuice/pkg/private/serrors"
)

type resolvedInfo struct {
	Address string `json:"address"`
	Family  string `json:"family"`
	Len     int    `json:"len"`
}

func newResolve() *cobra.Command {
	var flags struct {
		service  string
		capacity int
		timeout  time.Duration
		json     bool
	}

	cmd := &cobra.Command{
		Use:   "resolve [flags] <hostname>",
		Short: "Resolve a hostname to generic addresses",
		Long: `'resolve' resolves a hostname and optional UDP service to the generic
addresses a connectivity agent would consider, in resolver order.

The resolver reports the total number of matching addresses even when they do
not all fit the requested capacity, so truncation is visible in the output.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if flags.capacity <= 0 {
				return serrors.New("capacity must be positive", "capacity", flags.capacity)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			records := make([]addr.Record, flags.capacity)
			n, err := addr.Resolve(ctx, args[0], flags.service, records)
			if err != nil {
				return err
			}
			written := n
			if written > len(records) {
				written = len(records)
			}

			if flags.json {
				infos := make([]resolvedInfo, 0, written)
				for _, r := range records[:written] {
					infos = append(infos, resolvedInfo{
						Address: r.Addr.String(),
						Family:  r.Addr.Family().String(),
						Len:     r.Len,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"addresses": infos,
					"found":     n,
				})
			}

			for _, r := range records[:written] {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			if n > written {
				fmt.Fprintf(cmd.OutOrStdout(),
					"(%d more address(es) found; rerun with --capacity %d)\n", n-written, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.service, "service", "", "UDP service name or port number")
	cmd.Flags().IntVar(&flags.capacity, "capacity", 8, "Maximum number of addresses to report")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 5*time.Second, "Resolution timeout")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Write the output as machine readable json")
	return cmd
}
