package main

import (
	"fmt"
	"os"

	xstat "github.com/Xuerui-Yang/xuerui-stat"
	"github.com/Xuerui-Yang/xuerui-stat/config"
	"github.com/spf13/cobra"
)

func forestCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cfg := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "forest",
		Short: "Grow a random forest from a set of data",
		Long:  `Grow a random forest from a set of data to predict a label column, estimate its out-of-bag error and test it`,
		Run: func(cmd *cobra.Command, args []string) {
			defer cfg.ContextCancelFunc()()
			c, err := cfg.trainingConfig(cmd, true)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ds, err := cfg.trainingSet(c.Label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			rf := xstat.NewRandomForest(ds, cfg.modelOptions(c)...)
			cfg.Logf("Growing %d trees with max depth %d and min gini %v...", c.Forest.Trees, c.Forest.MaxDepth, c.Forest.MinGini)
			err = rf.Train(c.Forest.Trees, c.Forest.MaxDepth, c.Forest.MinGini, c.Forest.Subfeatures)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the forest: %v\n", err)
				os.Exit(3)
			}
			cfg.Logf("Done")
			w := cmd.OutOrStdout()
			if cfg.predictInput != "" {
				w = cmd.ErrOrStderr()
			}
			fmt.Fprintf(w, "forest of %d trees with %d features per split\n", len(rf.Trees()), rf.Subfeatures())
			fmt.Fprintf(w, "out-of-bag error: %f\n", rf.OOBError())
			if ws := rf.Warnings(); len(ws) > 0 {
				fmt.Fprintf(w, "%d trees without out-of-bag rows left out of the estimate\n", len(ws))
			}
			err = cfg.evaluate(cmd, rf, ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cfg.addFlags(cmd)
	cmd.Flags().IntVarP(&(cfg.trees), "trees", "n", config.DefaultTrees, "number of trees in the forest")
	cmd.Flags().IntVar(&(cfg.subfeatures), "subfeatures", 0, "number of features drawn for every split (defaults to 0: the rounded square root of the number of columns)")
	return cmd
}
