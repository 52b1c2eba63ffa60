// Package lab defines the contracts shared by every numlab exercise.
//
// An [Exercise] is a self-contained numerical demonstration: it generates or
// loads its input, delegates the computation to a numerical library, and
// returns a [Result] holding plottable series, point sets, summary stats and
// any artifact files written to disk. Exercises never share state; each Run
// starts from its [Params] alone.
//
//	ex := exercises.NewRegistry().Get("fft")
//	result, err := ex.Run(ctx, params)
package lab
