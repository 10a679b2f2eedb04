package cmd

import (
	"github.com/crytic/gsolc/compilation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeFlagName maps the un-hyphenated spellings of multi-word flags onto their canonical names, so
// --basepath and --base-path behave identically.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "basepath":
		name = "base-path"
	case "standardjson":
		name = "standard-json"
	case "outputdir":
		name = "output-dir"
	}
	return pflag.NormalizedName(name)
}

// addCompileFlags adds the various flags for the root compile command
func addCompileFlags() {
	// Prevent alphabetical sorting of usage message
	rootCmd.Flags().SortFlags = false
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Compiler settings
	rootCmd.Flags().Bool("optimize", false, "enable the compiler's bytecode optimizer")

	// Artifact selection; at least one of these is required outside of --standard-json mode
	rootCmd.Flags().Bool("bin", false, "write the creation bytecode of each contract")
	rootCmd.Flags().Bool("abi", false, "write the ABI of each contract")

	// Machine-readable mode
	rootCmd.Flags().Bool("standard-json", false, "exchange a single standard-JSON document over stdin/stdout, ignoring all artifact flags")

	// Import resolution
	rootCmd.Flags().String("base-path", "", "directory root source imports are resolved against")

	// Output directory
	rootCmd.Flags().StringP("output-dir", "o", ".", "directory to write artifact files into")
}

// compileConfigFromFlags builds the driver configuration from whatever flags were provided to the root command
func compileConfigFromFlags(cmd *cobra.Command) (compilation.Config, error) {
	var (
		config compilation.Config
		err    error
	)

	if config.Optimize, err = cmd.Flags().GetBool("optimize"); err != nil {
		return config, err
	}
	if config.EmitBytecode, err = cmd.Flags().GetBool("bin"); err != nil {
		return config, err
	}
	if config.EmitABI, err = cmd.Flags().GetBool("abi"); err != nil {
		return config, err
	}
	if config.StandardJSON, err = cmd.Flags().GetBool("standard-json"); err != nil {
		return config, err
	}
	if config.BasePath, err = cmd.Flags().GetString("base-path"); err != nil {
		return config, err
	}
	if config.OutputDirectory, err = cmd.Flags().GetString("output-dir"); err != nil {
		return config, err
	}
	return config, nil
}
