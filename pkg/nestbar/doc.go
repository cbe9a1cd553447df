// Package nestbar renders nested terminal progress bars for logically
// nested loops. An outer loop's bar stays visible while inner loops draw
// bars beneath it; bars are redrawn in place with cursor-addressed escape
// sequences and removed as their loops finish.
//
// A Stack owns the ordered set of active trackers and all terminal render
// state. The package-level functions operate on Default, a stack writing to
// stdout, which covers the common case:
//
//	outer := nestbar.DefaultOptions()
//	outer.Desc = "outer"
//	for i := range nestbar.EachN(30, outer) {
//		inner := nestbar.DefaultOptions()
//		inner.Desc = fmt.Sprintf("inner %d", i)
//		for range nestbar.EachN(10, inner) {
//			work()
//		}
//	}
//
// Rendering happens synchronously inside Advance, driven by the cadence of
// the caller's own loop and throttled by the stack's update interval. There
// is no background goroutine and no locking: a Stack models nested loops on
// a single control thread and is not safe for concurrent use.
package nestbar
