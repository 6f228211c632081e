package sparc

// Config holds discovery settings for a rotation-curve corpus directory.
type Config struct {
	DataDir         string `json:"data_dir"`
	PrimaryPattern  string `json:"primary_pattern"`
	FallbackPattern string `json:"fallback_pattern"`
}

// DefaultConfig returns the standard SPARC layout: rotmod files first,
// any .dat file as fallback.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:         dataDir,
		PrimaryPattern:  "*_rotmod.dat",
		FallbackPattern: "*.dat",
	}
}
