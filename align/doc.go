// Package align wires bitpack, kernel, front, jrange, blockdrv and
// traceback into the band-doubling driver: an Aligner
// repeatedly widens a cost bound f_max, reusing fronts across iterations
// via incremental doubling, until a path of cost <= f_max is found (or
// Strategy is None and Domain must be Full, in which case it runs once
// with no bound).
package align
