// Package param holds the per-cell parameters of a binned function.
//
// ScalarParameter is the capability every slot must offer; RealVar is the
// default implementation. Table stores exactly one slot per cell, in table
// order (first dimension fastest), and checks that invariant once, at bind
// time. The Create* factories build default parameter sets following the
// naming contract "<prefix>_bin_<i>[_<j>[_<k>]]", nominal 1.0, lower bound 0.
//
// Errors:
//
//   - ErrSizeMismatch: parameter count != cell count (BindFrom).
//   - ErrShapeMismatch: external data cell count != table size (LoadValues).
//   - ErrIndexOutOfRange: slot index outside [0, Size()).
//   - ErrNilParameter (wrapped in SlotError): nil slot at bind time.
//   - ErrAlreadyBound: second BindFrom.
//   - ErrUnsupportedDimensionality: factories asked for more than 3 dimensions.
package param
