package main

import (
	"context"
	"fmt"

	xstat "github.com/Xuerui-Yang/xuerui-stat"
	"github.com/Xuerui-Yang/xuerui-stat/config"
	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/Xuerui-Yang/xuerui-stat/table/csv"
	"github.com/Xuerui-Yang/xuerui-stat/tree"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cobra"
)

// model is the behaviour shared by trees and forests once trained.
type model interface {
	Test(...dataset.Sample) (float64, error)
	TestTable(dataframe.DataFrame) (float64, error)
	ConfusionMatrix() *tree.ConfusionMatrix
	PredictAll([]dataset.Sample) ([]int, error)
}

type trainCmdConfig struct {
	*rootCmdConfig
	dataInput    string
	testInput    string
	predictInput string
	configInput  string
	label        string
	tableName    string
	seed         int64
	maxDepth     int
	minGini      float64
	trees        int
	subfeatures  int
	ctx          context.Context
	cancelFunc   context.CancelFunc
}

func (tcc *trainCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(tcc.dataInput), "input", "i", "", inputHelp+" with data to train on (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(tcc.testInput), "test", "t", "", inputHelp+" with data to test the trained model against")
	cmd.Flags().StringVarP(&(tcc.predictInput), "predict", "p", "", inputHelp+" with samples whose label will be predicted and written to STDOUT as CSV")
	cmd.Flags().StringVarP(&(tcc.configInput), "config", "c", "", "path to a YML file with training parameters, overridden by flags")
	cmd.Flags().StringVarP(&(tcc.label), "label", "l", "", "name of the column the model should predict (required here or in the config file)")
	cmd.Flags().StringVar(&(tcc.tableName), "table", "samples", "name of the table, collection or key prefix holding the data on database inputs")
	cmd.Flags().Int64Var(&(tcc.seed), "seed", 0, "seed for random decisions (defaults to the current time)")
	cmd.Flags().IntVar(&(tcc.maxDepth), "max-depth", 0, "maximum depth of trees (defaults to 0: twice the number of rows)")
	cmd.Flags().Float64Var(&(tcc.minGini), "min-gini", 0, "Gini impurity at or below which nodes are not split")
}

/*
trainingConfig reads the config file, if any, and overrides its values with
the flags set on the command. The forest boolean selects the section the
depth and impurity flags apply to.
*/
func (tcc *trainCmdConfig) trainingConfig(cmd *cobra.Command, forest bool) (*config.Config, error) {
	c := config.Default()
	if tcc.configInput != "" {
		tcc.Logf("Reading training parameters from %s...", tcc.configInput)
		var err error
		c, err = config.ReadFile(tcc.configInput)
		if err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("label") {
		c.Label = tcc.label
	}
	if flags.Changed("seed") {
		c.Seed = &tcc.seed
	}
	maxDepth, minGini := &c.Tree.MaxDepth, &c.Tree.MinGini
	if forest {
		maxDepth, minGini = &c.Forest.MaxDepth, &c.Forest.MinGini
	}
	if flags.Changed("max-depth") {
		*maxDepth = tcc.maxDepth
	}
	if flags.Changed("min-gini") {
		*minGini = tcc.minGini
	}
	if flags.Changed("trees") {
		c.Forest.Trees = tcc.trees
	}
	if flags.Changed("subfeatures") {
		c.Forest.Subfeatures = tcc.subfeatures
	}
	if c.Label == "" {
		return nil, fmt.Errorf("required label flag was not set")
	}
	err := c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (tcc *trainCmdConfig) modelOptions(c *config.Config) []xstat.Option {
	opts := []xstat.Option{xstat.WithLogger(tcc.Logger())}
	if c.Seed != nil {
		opts = append(opts, xstat.WithSeed(*c.Seed))
	}
	return opts
}

func (tcc *trainCmdConfig) trainingSet(label string) (*dataset.Dataset, error) {
	df, err := tcc.readTable(tcc.Context(), tcc.dataInput, tcc.tableName)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.New(df, label)
	if err != nil {
		return nil, err
	}
	tcc.Logf("Read training set with %d rows, %d features and %d categories of %s", ds.RowsNum(), len(ds.Features), len(ds.Categories), label)
	return ds, nil
}

/*
evaluate prints the training error of the model and, when the test and
predict inputs are set, its error on the test data and its predictions.
Predictions are written as CSV to the command's output, and reports are
moved to its error output when there are predictions.
*/
func (tcc *trainCmdConfig) evaluate(cmd *cobra.Command, m model, ds *dataset.Dataset) error {
	w := cmd.OutOrStdout()
	if tcc.predictInput != "" {
		w = cmd.ErrOrStderr()
	}
	e, err := m.Test()
	if err != nil {
		return fmt.Errorf("testing on training data: %v", err)
	}
	fmt.Fprintf(w, "training error: %f\n", e)
	printConfusionMatrix(w, m.ConfusionMatrix())
	if tcc.testInput != "" {
		df, err := tcc.readTable(tcc.Context(), tcc.testInput, tcc.tableName)
		if err != nil {
			return err
		}
		e, err = m.TestTable(df)
		if err != nil {
			return fmt.Errorf("testing on %s: %v", tcc.testInput, err)
		}
		fmt.Fprintf(w, "test error: %f\n", e)
		printConfusionMatrix(w, m.ConfusionMatrix())
	}
	if tcc.predictInput != "" {
		df, err := tcc.readTable(tcc.Context(), tcc.predictInput, tcc.tableName)
		if err != nil {
			return err
		}
		samples, err := ds.EncodeFeatures(df)
		if err != nil {
			return err
		}
		codes, err := m.PredictAll(samples)
		if err != nil {
			return fmt.Errorf("predicting samples: %v", err)
		}
		labels := make([]string, len(codes))
		for i, c := range codes {
			labels[i] = ds.Category(c)
		}
		df = df.Mutate(series.New(labels, series.String, ds.Label))
		return csv.WriteTable(cmd.OutOrStdout(), df)
	}
	return nil
}

func (tcc *trainCmdConfig) Context() context.Context {
	tcc.setContextAndCancelFunc()
	return tcc.ctx
}

func (tcc *trainCmdConfig) ContextCancelFunc() context.CancelFunc {
	tcc.setContextAndCancelFunc()
	return tcc.cancelFunc
}

func (tcc *trainCmdConfig) setContextAndCancelFunc() {
	if tcc.ctx == nil {
		tcc.ctx, tcc.cancelFunc = context.WithCancel(context.Background())
	}
}
