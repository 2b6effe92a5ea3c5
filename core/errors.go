package core

import "errors"

// Sentinel errors for precondition and invariant violations. Per design,
// expected geometric rejections (collisions, broken connectivity,
// out-of-bounds radius) are never errors — the move set reports them as
// accepted == false. Only startup preconditions and internal
// inconsistencies use these sentinels; callers branch on them with
// errors.Is, never by comparing strings.
var (
	// ErrOddScaffoldCount is returned by GenerateStartupConfig when Nsca is odd.
	ErrOddScaffoldCount = errors.New("core: scaffold count Nsca must be even")

	// ErrOddFilamentLength is returned by GenerateStartupConfig when lf is odd.
	ErrOddFilamentLength = errors.New("core: filament length lf must be even")

	// ErrConnectivityInconsistent is returned by the debug consistency mode
	// of the connectivity oracle when starting the search from different
	// filaments yields different answers; it indicates an implementation bug.
	ErrConnectivityInconsistent = errors.New("core: connectivity oracle gave inconsistent answers across start filaments")

	// ErrRadiusOutOfBounds signals a startup or restart configuration that
	// requests a height outside [min_height, max_height].
	ErrRadiusOutOfBounds = errors.New("core: requested height is outside [min_height, max_height]")

	// ErrBiasRestartRow is returned by the bias file reader when the
	// requested restart iteration row does not exist in the file.
	ErrBiasRestartRow = errors.New("core: bias restart row not found")
)
