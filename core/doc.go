// Package core provides the Monte Carlo (MC) kernel that samples
// equilibrium configurations of a ring-shaped assembly of semi-flexible
// filaments on a cylindrical lattice.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - lattice.go: periodic lattice coordinates and the current/trial view flip
//   - filament.go: filament coordinates and the current/trial view flip
//   - lattice.go, system.go: the site occupancy maps and accept/revert protocol
//   - energy.go: bending, overlap and bias energy terms
//   - connectivity.go: the ring/system connectivity oracle (the hardest part)
//   - moves.go: the translation and radius move set, with Metropolis acceptance
//   - biases.go: height binning and the umbrella-sampling bias update
//   - driver.go: the MC step loop (C7)
//   - us.go: the umbrella-sampling iteration loop (C8)
//   - startup.go: deterministic uniform-overlap initial configuration (C9)
//
// # Architecture
//
// core owns all simulation state (Lattice, System, Filaments, Biases) and
// runs single-threaded: there is no concurrency inside the step loop, and
// no suspension points. External I/O (trajectory/order-parameter/bias
// files) is abstracted behind small interfaces defined here and
// implemented in the sibling sinks/ package, so core never imports it.
//
// # Key Interfaces
//
//   - OpsSink: one row per write-interval checkpoint (step, energy, height, radius)
//   - VTFSink: filament topology plus one frame per write-interval checkpoint
//   - USCountsSink, USFreqsSink, USBiasesSink: one row per umbrella-sampling iteration
package core
