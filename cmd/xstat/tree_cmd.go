package main

import (
	"fmt"
	"os"

	xstat "github.com/Xuerui-Yang/xuerui-stat"
	"github.com/spf13/cobra"
)

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a decision tree from a set of data",
		Long:  `Grow a classification tree from a set of data to predict a label column, print it and test it`,
		Run: func(cmd *cobra.Command, args []string) {
			defer config.ContextCancelFunc()()
			c, err := config.trainingConfig(cmd, false)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ds, err := config.trainingSet(c.Label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			dt := xstat.NewDecisionTree(ds, config.modelOptions(c)...)
			config.Logf("Growing tree with max depth %d and min gini %v...", c.Tree.MaxDepth, c.Tree.MinGini)
			dt.Train(c.Tree.MaxDepth, c.Tree.MinGini)
			config.Logf("Done")
			w := cmd.OutOrStdout()
			if config.predictInput != "" {
				w = cmd.ErrOrStderr()
			}
			t := dt.Tree()
			fmt.Fprintf(w, "tree of depth %d with %d leaves\n", t.Depth(), t.Leaves())
			fmt.Fprint(w, t.Format(ds.Features, ds.Categories))
			err = config.evaluate(cmd, dt, ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd)
	return cmd
}
