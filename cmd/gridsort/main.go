// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daviszhen/gridsort/pkg/grid"
	"github.com/daviszhen/gridsort/pkg/sorting"
	"github.com/daviszhen/gridsort/pkg/util"
)

var defCfgFilePaths = []string{".", "etc"}
var cfgFileName = "gridsort.toml"

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *util.Config
	reg     *sorting.Registry
}

func newApp() *app {
	v := viper.New()
	def := util.DefaultConfig()
	v.SetDefault("sort.locale", def.Sort.Locale)
	v.SetDefault("sort.dateFormat", def.Sort.DateFormat)
	v.SetDefault("sort.sortEmptyCells", def.Sort.SortEmptyCells)
	v.SetDefault("sort.schema", def.Sort.Schema)
	v.SetDefault("debug.printConfig", def.Debug.PrintConfig)
	v.SetDefault("debug.printRegistry", def.Debug.PrintRegistry)
	v.SetDefault("debug.logLevel", def.Debug.LogLevel)
	return &app{
		v:   v,
		cfg: def,
		reg: sorting.NewRegistry(),
	}
}

func (a *app) loadConfig() error {
	fpath := a.cfgFile
	if fpath == "" {
		var has bool
		fpath, has = util.FindFile(defCfgFilePaths, cfgFileName)
		if !has {
			util.Debug("no config file, using defaults", zap.String("name", cfgFileName))
			return a.initOptions()
		}
	}
	a.v.SetConfigFile(fpath)
	a.v.SetConfigType("toml")
	if err := a.v.ReadInConfig(); err != nil {
		util.Error("viper load config file failed",
			zap.String("fpath", fpath),
			zap.Error(err))
		return err
	}
	return a.initOptions()
}

func (a *app) initOptions() error {
	a.cfg.Sort.Locale = a.v.GetString("sort.locale")
	a.cfg.Sort.DateFormat = a.v.GetString("sort.dateFormat")
	a.cfg.Sort.SortEmptyCells = a.v.GetBool("sort.sortEmptyCells")
	a.cfg.Sort.Schema = a.v.GetString("sort.schema")
	a.cfg.Debug.PrintConfig = a.v.GetBool("debug.printConfig")
	a.cfg.Debug.PrintRegistry = a.v.GetBool("debug.printRegistry")
	a.cfg.Debug.LogLevel = a.v.GetString("debug.logLevel")
	return util.SetLogLevel(a.cfg.Debug.LogLevel)
}

///root cmd

var info = "sort csv grids by typed columns"

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridsort",
		Short:        info,
		Long:         info,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "use gridsort --help or -h")
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file. default ./gridsort.toml or etc/gridsort.toml")
	root.PersistentFlags().String("log_level", "", "debug, info, warn, error")
	a.v.BindPFlag("debug.logLevel", root.PersistentFlags().Lookup("log_level"))

	root.AddCommand(a.sortCmd(), a.typesCmd())
	return root
}

//sort cmd

var sortInfo = "sort a csv file"

func (a *app) sortCmd() *cobra.Command {
	var (
		input  string
		output string
		by     []string
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: sortInfo,
		Long:  sortInfo + ". columns are typed by the schema; --by col[:asc|desc] may repeat.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if a.cfg.Debug.PrintConfig {
				fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", *a.cfg)
			}
			if a.cfg.Debug.PrintRegistry {
				fmt.Fprintln(cmd.ErrOrStderr(), a.reg.Describe())
			}

			var schema *grid.Schema
			if a.cfg.Sort.Schema != "" {
				var err error
				schema, err = grid.LoadSchema(a.cfg.Sort.Schema)
				if err != nil {
					return err
				}
			}
			specs, err := grid.ParseSortSpecs(by)
			if err != nil {
				return err
			}
			table, err := grid.LoadCSV(input)
			if err != nil {
				return err
			}

			sorter := grid.NewSorter(a.reg, schema, grid.OptionsFromConfig(a.cfg))
			sorted, err := sorter.Sort(table, specs)
			if err != nil {
				return err
			}
			util.Info("sorted",
				zap.String("input", input),
				zap.Int("rows", len(sorted.Rows)),
				zap.Strings("by", by))

			if output == "" {
				return sorted.WriteCSV(cmd.OutOrStdout())
			}
			return sorted.SaveCSV(output)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input csv path")
	cmd.Flags().StringVar(&output, "output", "", "output csv path. stdout if empty")
	cmd.Flags().StringArrayVar(&by, "by", nil, "sort column, col[:asc|desc]")
	cmd.Flags().String("schema", "", "grid schema yaml path")
	cmd.Flags().String("locale", "", "collation locale for text columns")
	cmd.Flags().String("date_format", "", "go time layout for date columns")
	cmd.Flags().Bool("sort_empty_cells", false, "sort empty cells instead of putting them last")

	a.v.BindPFlag("sort.schema", cmd.Flags().Lookup("schema"))
	a.v.BindPFlag("sort.locale", cmd.Flags().Lookup("locale"))
	a.v.BindPFlag("sort.dateFormat", cmd.Flags().Lookup("date_format"))
	a.v.BindPFlag("sort.sortEmptyCells", cmd.Flags().Lookup("sort_empty_cells"))
	return cmd
}

//types cmd

var typesInfo = "list registered column data types"

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: typesInfo,
		Long:  typesInfo,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.reg.Describe())
			return err
		},
	}
}

func main() {
	defer util.Sync()
	if err := newApp().rootCmd().Execute(); err != nil {
		util.Error("gridsort failed", zap.Error(err))
		os.Exit(1)
	}
}
