// Package snapshot persists solver output on the caller's side: colour
// heatmaps of scalar fields as PNG and raw fields as gonum matrix dumps.
// Nothing here feeds back into the simulation.
package snapshot
