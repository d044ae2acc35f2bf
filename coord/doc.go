// Package coord defines the small coordinate and range types shared
// across the DP engine's packages: column/row ranges and matrix
// positions. Keeping these in their own package (rather than duplicating
// them, or reaching into a larger package for them) avoids import cycles
// between front, jrange, blockdrv, traceback and align.
package coord
