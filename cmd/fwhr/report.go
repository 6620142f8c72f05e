package main

import (
	"fmt"
	"io"
	"path/filepath"

	app "fwhr-bot/internal/application"
)

func printResult(w io.Writer, name string, out *app.MeasurementOutput, debug bool) {
	r := out.Result
	if r.HasRatio() {
		fmt.Fprintf(w, "%s\tfwhr=%.4f\n", name, r.Ratio)
	} else {
		fmt.Fprintf(w, "%s\trejected\n", name)
	}

	if out.Faces > 1 {
		fmt.Fprintf(w, "  faces=%d, measured the first one\n", out.Faces)
	}

	if debug {
		v := r.Verdict
		fmt.Fprintf(w, "  eye_dif=%.4f nose_dif=%.4f space_ratio=%.4f accepted=%t\n",
			v.EyeDif, v.NoseDif, v.SpaceRatio, v.Accepted)
		if r.HasRatio() {
			c := r.Corners
			fmt.Fprintf(w, "  box top=%.0f bottom=%.0f left=%.0f right=%.0f\n",
				c.TopLeft.Y, c.BottomLeft.Y, c.TopLeft.X, c.TopRight.X)
		}
	}
}

func printBatch(w io.Writer, items []app.BatchItem, summary app.BatchSummary) {
	for _, item := range items {
		name := filepath.Base(item.Path)
		if item.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, item.Err)
			continue
		}
		printResult(w, name, item.Output, false)
	}

	fmt.Fprintf(w, "\nfiles=%d measured=%d rejected=%d failed=%d\n",
		summary.Files, summary.Measured, summary.Rejected, summary.Failed)
	if summary.Measured > 0 {
		fmt.Fprintf(w, "mean=%.4f median=%.4f stddev=%.4f min=%.4f max=%.4f\n",
			summary.Mean, summary.Median, summary.StdDev, summary.Min, summary.Max)
	}
}
