// Package window slices 1D sequences and 2D matrices into fixed-size
// overlapping windows at a fixed stride.
//
// The number of windows along an axis of length L with window size W and
// stride S is ceil((L-W)/S + 1). The input is right-padded (bottom/right
// padded in the 2D case) with a configured pad value so that the last
// window is fully populated; original samples are never shifted and no
// window reads before index 0.
package window
