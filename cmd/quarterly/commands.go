package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BerniceZTT/mentorship_analytics/analytics"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quarterly",
		Short:         "按季度聚合指标数据",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeriesCmd(), newMergeCmd())
	return root
}

func newSeriesCmd() *cobra.Command {
	var file, id string
	cmd := &cobra.Command{
		Use:   "series",
		Short: "将 {date, value} 数组聚合为季度序列",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(file, cmd.InOrStdin(), func(r io.Reader) error {
				return runSeries(r, cmd.OutOrStdout(), id)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "样本文件，- 表示标准输入")
	cmd.Flags().StringVar(&id, "id", "series", "序列名称")
	return cmd
}

func newMergeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "将多条季度序列合并为对比行",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(file, cmd.InOrStdin(), func(r io.Reader) error {
				return runMerge(r, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "序列文件，- 表示标准输入")
	return cmd
}

// withInput 打开输入文件
func withInput(path string, stdin io.Reader, fn func(io.Reader) error) error {
	if path == "" || path == "-" {
		return fn(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()
	return fn(f)
}

func runSeries(in io.Reader, out io.Writer, id string) error {
	var samples []analytics.Sample
	if err := decodeJSON(in, &samples); err != nil {
		return err
	}
	return encodeJSON(out, analytics.AssembleSeries(id, samples))
}

func runMerge(in io.Reader, out io.Writer) error {
	var series []analytics.NamedSeries
	if err := decodeJSON(in, &series); err != nil {
		return err
	}
	return encodeJSON(out, analytics.Merge(series))
}

func decodeJSON(in io.Reader, v interface{}) error {
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("解析输入失败: %w", err)
	}
	return nil
}

func encodeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
