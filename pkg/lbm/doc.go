// Package lbm is a two-dimensional D2Q9 lattice Boltzmann solver for viscous
// flow past a circular obstacle in a channel.
//
// Each Step runs four stages separated by barriers:
//
//   - stream: shift every population one lattice step along its direction,
//     wrapping at the grid edges.
//   - boundaries: full-way bounce-back on the top and bottom walls and the
//     obstacle (these cells never collide), zero-gradient outlet,
//     fixed-velocity inlet. The four corners are wall cells.
//   - macroscopic recovery: ρ, ux, uy from the population moments.
//   - collision: BGK relaxation of the fluid cells towards the local equilibrium at rate
//     ω = 1/(3ν + 0.5).
//
// Fields are addressed by (row, column); row 0 is the bottom wall and
// column 0 the inlet. All quantities are in lattice units.
//
// Errors:
//
//   - *ConfigError (ErrConfiguration): bad grid, obstacle or viscosity.
//   - *DivergedError (ErrDiverged): non-positive density or non-finite population.
//   - ErrUninitialized, ErrOutOfRange (ErrUsage): solver driven out of order.
package lbm
