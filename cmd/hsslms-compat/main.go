// Package main provides the hsslms-compat command line interface for
// inspecting and exercising the HSS/LMS primitive provider.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
	"github.com/BackendStack21/hsslms-compat-go/core"
	"github.com/BackendStack21/hsslms-compat-go/primitives"
	"github.com/BackendStack21/hsslms-compat-go/utils"
)

const (
	version = "1.0.0"
	appName = "hsslms-compat"
)

// OutputFormat represents the output format for serialization
type OutputFormat string

const (
	FormatHex    OutputFormat = "hex"
	FormatBase64 OutputFormat = "base64"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
)

// CLIConfig holds CLI configuration
type CLIConfig struct {
	Tier         hsscompat.Tier // TierUnknown means use the probed default
	OutputFormat OutputFormat
	OutputFile   string
	InputFile    string
	NoClobber    bool
	Verbose      bool
	Timing       bool
}

// ProbeReport represents the output of the probe command
type ProbeReport struct {
	Version      string                 `json:"version" yaml:"version"`
	Capabilities hsscompat.Capabilities `json:"capabilities" yaml:"capabilities"`
	Resolved     core.TierProfile       `json:"resolved" yaml:"resolved"`
	Consistent   bool                   `json:"consistent" yaml:"consistent"`
	Problem      string                 `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// DigestExport represents an exported SHAKE256 digest
type DigestExport struct {
	Tier      string `json:"tier"`
	Algorithm string `json:"algorithm"`
	Length    int    `json:"length"`
	Digest    string `json:"digest"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, version)
		fmt.Printf("hsslms-compat library version %s\n", hsscompat.Version)
	case "probe":
		handleProbe(os.Args[2:])
	case "encode":
		handleEncode(os.Args[2:])
	case "decode":
		handleDecode(os.Args[2:])
	case "hex":
		handleHex(os.Args[2:])
	case "rand":
		handleRand(os.Args[2:])
	case "shake":
		handleShake(os.Args[2:])
	case "benchmark":
		handleBenchmark(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - HSS/LMS primitive provider CLI

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    probe       Show host capabilities and the resolved tier
    encode      Encode an unsigned integer as big-endian bytes
    decode      Decode 4 big-endian bytes to an unsigned integer
    hex         Hex encode or decode a message
    rand        Generate random bytes
    shake       Compute a SHAKE256 digest of caller-chosen length
    benchmark   Run performance benchmarks
    version     Show version information
    help        Show this help message

OPTIONS:
    --tier <1|2|3>              Force a capability tier (default: probed)
    --format <hex|base64|json|yaml>  Output format
    --output <file>             Output file (default: stdout)
    --no-clobber                Refuse to overwrite an existing output file
    --timing                    Show timing information
    --verbose                   Verbose output

EXAMPLES:
    %s probe --format yaml
    %s encode --width 32 --value 1
    %s decode --hex 00000001
    %s hex encode --message "hello"
    %s rand --length 32 --format base64
    %s shake --length 64 --message "abcd" --tier 1
    %s benchmark --iterations 1000
`, appName, appName, appName, appName, appName, appName, appName, appName, appName)
}

// ============================================================================
// Commands
// ============================================================================

func handleProbe(args []string) {
	config := parseConfig(args)

	start := time.Now()
	caps := core.Probe()
	tier := core.ResolveTier(caps)
	elapsed := time.Since(start)

	if config.Tier != hsscompat.TierUnknown {
		tier = config.Tier
	}
	profile, err := core.GetTier(tier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := ProbeReport{
		Version:      hsscompat.Version,
		Capabilities: caps,
		Resolved:     profile,
		Consistent:   true,
	}
	if err := core.ValidateCapabilities(tier, caps); err != nil {
		report.Consistent = false
		report.Problem = err.Error()
	}

	var output []byte
	if config.OutputFormat == FormatYAML {
		output, err = yaml.Marshal(report)
	} else {
		output, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}

	writeOutput(output, config)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Probe took: %v\n", elapsed)
	}
}

func handleEncode(args []string) {
	config := parseConfig(args)
	p := selectProvider(config)
	width := getArg(args, "--width", "-w")
	valueStr := getArg(args, "--value", "-n")

	if valueStr == "" {
		fmt.Fprintf(os.Stderr, "Error: --value is required\n")
		os.Exit(1)
	}
	if width == "" {
		width = "32"
	}

	bits, err := strconv.Atoi(width)
	if err != nil || (bits != 8 && bits != 16 && bits != 32) {
		fmt.Fprintf(os.Stderr, "Error: invalid width '%s'. Must be one of: 8, 16, 32\n", width)
		os.Exit(1)
	}
	value, err := strconv.ParseUint(valueStr, 0, bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: value %s does not fit in %d bits: %v\n", valueStr, bits, err)
		os.Exit(1)
	}

	var out []byte
	switch bits {
	case 8:
		out = p.EncodeU8(uint8(value))
	case 16:
		out = p.EncodeU16(uint16(value))
	default:
		out = p.EncodeU32(uint32(value))
	}

	writeOutput([]byte(encodeBytes(p, out, config.OutputFormat)), config)
}

func handleDecode(args []string) {
	config := parseConfig(args)
	p := selectProvider(config)
	hexStr := getArg(args, "--hex", "-x")

	if hexStr == "" {
		fmt.Fprintf(os.Stderr, "Error: --hex is required\n")
		os.Exit(1)
	}

	b, err := p.HexDecode(hexStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding hex: %v\n", err)
		os.Exit(1)
	}
	v, err := p.DecodeU32(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: expected exactly 4 bytes, got %d: %v\n", len(b), err)
		os.Exit(1)
	}

	writeOutput([]byte(strconv.FormatUint(uint64(v), 10)), config)
}

func handleHex(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: hex requires a subcommand: encode or decode\n")
		os.Exit(1)
	}
	config := parseConfig(args[1:])
	p := selectProvider(config)
	message := readMessage(args[1:], config, p)

	switch args[0] {
	case "encode", "enc":
		writeOutput([]byte(p.HexEncode(message)), config)
	case "decode", "dec":
		b, err := p.HexDecode(string(message))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding hex: %v\n", err)
			os.Exit(1)
		}
		writeOutput(b, config)
	default:
		fmt.Fprintf(os.Stderr, "Unknown hex subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func handleRand(args []string) {
	config := parseConfig(args)
	p := selectProvider(config)
	length := getIntArg(args, "--length", "-n", 32)

	start := time.Now()
	b, err := p.RandomBytes(length)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating random bytes: %v\n", err)
		os.Exit(1)
	}

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Random generation took: %v\n", elapsed)
	}

	writeOutput([]byte(encodeBytes(p, b, config.OutputFormat)), config)

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Generated %d random bytes with tier: %s\n", len(b), p.Tier())
	}
}

func handleShake(args []string) {
	config := parseConfig(args)
	p := selectProvider(config)
	length := getIntArg(args, "--length", "-n", 32)
	chunk := getIntArg(args, "--chunk", "-c", 0)

	if err := utils.CheckLength(length, utils.MaxDigestLength); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid digest length %d: %v\n", length, err)
		os.Exit(1)
	}
	message := readMessage(args, config, p)

	start := time.Now()
	h := p.NewStreamingHash()
	if chunk > 0 {
		for off := 0; off < len(message); off += chunk {
			end := off + chunk
			if end > len(message) {
				end = len(message)
			}
			h.Update(message[off:end])
		}
	} else {
		h.Update(message)
	}
	digest := h.Digest(length)
	elapsed := time.Since(start)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "SHAKE256 took: %v\n", elapsed)
	}

	if config.OutputFormat == FormatJSON {
		export := DigestExport{
			Tier:      p.Tier().String(),
			Algorithm: h.Name(),
			Length:    length,
			Digest:    p.HexEncode(digest),
		}
		output, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
			os.Exit(1)
		}
		writeOutput(output, config)
		return
	}

	writeOutput([]byte(encodeBytes(p, digest, config.OutputFormat)), config)
}

func handleBenchmark(args []string) {
	config := parseConfig(args)
	iterations := getIntArg(args, "--iterations", "-n", 10000)

	if iterations < 1 {
		iterations = 1
	}

	fmt.Printf("hsslms-compat Benchmark Results\n")
	fmt.Printf("===============================\n")
	fmt.Printf("Iterations: %d\n\n", iterations)

	tiers := core.AllTiers()
	if config.Tier != hsscompat.TierUnknown {
		profile, _ := core.GetTier(config.Tier)
		tiers = []core.TierProfile{profile}
	}

	msg := make([]byte, 55)
	for _, profile := range tiers {
		p, err := primitives.ForTier(profile.Tier)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Tier %d (%s)\n", int(profile.Tier), profile.Name)
		fmt.Println("---------------")

		start := time.Now()
		for i := 0; i < iterations; i++ {
			_ = p.EncodeU32(uint32(i))
		}
		fmt.Printf("  EncodeU32:   %v (avg)\n", time.Since(start)/time.Duration(iterations))

		start = time.Now()
		for i := 0; i < iterations; i++ {
			_ = p.HexEncode(msg[:32])
		}
		fmt.Printf("  HexEncode:   %v (avg)\n", time.Since(start)/time.Duration(iterations))

		start = time.Now()
		for i := 0; i < iterations; i++ {
			if _, err := p.RandomBytes(32); err != nil {
				fmt.Fprintf(os.Stderr, "RandomBytes error: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("  RandomBytes: %v (avg)\n", time.Since(start)/time.Duration(iterations))

		start = time.Now()
		for i := 0; i < iterations; i++ {
			h := p.NewStreamingHash()
			h.Update(msg)
			_ = h.Digest(32)
		}
		fmt.Printf("  SHAKE256:    %v (avg)\n", time.Since(start)/time.Duration(iterations))
		fmt.Println()
	}

	fmt.Println("Benchmark complete!")
}

// ============================================================================
// Utility Functions
// ============================================================================

func parseConfig(args []string) CLIConfig {
	config := CLIConfig{
		OutputFormat: FormatHex,
	}

	tier := getArg(args, "--tier", "-T")
	if tier != "" {
		t, err := core.ParseTier(tier)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid tier '%s'. Must be one of: 1, 2, 3\n", tier)
			os.Exit(1)
		}
		config.Tier = t
	}

	format := getArg(args, "--format", "-f")
	switch format {
	case "hex":
		config.OutputFormat = FormatHex
	case "base64":
		config.OutputFormat = FormatBase64
	case "json":
		config.OutputFormat = FormatJSON
	case "yaml":
		config.OutputFormat = FormatYAML
	case "":
		// No format specified, use default
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format '%s'. Must be one of: hex, base64, json, yaml\n", format)
		os.Exit(1)
	}

	config.OutputFile = getArg(args, "--output", "-o")
	config.InputFile = getArg(args, "--input", "-i")
	config.NoClobber = hasFlag(args, "--no-clobber", "")
	config.Verbose = hasFlag(args, "--verbose", "-v")
	config.Timing = hasFlag(args, "--timing", "-t")

	return config
}

// selectProvider returns the forced tier's provider, or the probed default.
func selectProvider(config CLIConfig) primitives.Provider {
	if config.Tier == hsscompat.TierUnknown {
		p := primitives.Default()
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Resolved tier: %s\n", p.Tier())
		}
		return p
	}
	p, err := primitives.ForTier(config.Tier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

func getArg(args []string, long, short string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == long || (short != "" && args[i] == short) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, long, short string) bool {
	for _, arg := range args {
		if arg == long || (short != "" && arg == short) {
			return true
		}
	}
	return false
}

func getIntArg(args []string, long, short string, def int) int {
	s := getArg(args, long, short)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s must be an integer, got '%s'\n", long, s)
		os.Exit(1)
	}
	return n
}

// readMessage returns --message, or the contents of --input.
func readMessage(args []string, config CLIConfig, p primitives.Provider) []byte {
	if msg := getArg(args, "--message", "-m"); msg != "" {
		return []byte(msg)
	}
	if config.InputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --message or --input is required\n")
		os.Exit(1)
	}
	data, err := os.ReadFile(config.InputFile)
	if err != nil {
		if p.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Error: input file %s not found (%s)\n", config.InputFile, p.Classify(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		}
		os.Exit(1)
	}
	return data
}

func encodeBytes(p primitives.Provider, data []byte, format OutputFormat) string {
	switch format {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data)
	default:
		return p.HexEncode(data)
	}
}

func writeOutput(data []byte, config CLIConfig) {
	if config.OutputFile == "" {
		fmt.Println(string(data))
		return
	}

	flags := os.O_WRONLY | os.O_CREATE
	if config.NoClobber {
		flags |= os.O_EXCL
	} else {
		flags |= os.O_TRUNC
	}

	// 0600 since output may be key-generation randomness.
	f, err := os.OpenFile(config.OutputFile, flags, 0600)
	if err != nil {
		p := selectProvider(CLIConfig{Tier: config.Tier})
		if config.NoClobber && p.IsExists(err) {
			fmt.Fprintf(os.Stderr, "Error: refusing to overwrite %s (%s)\n", config.OutputFile, p.Classify(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		}
		os.Exit(1)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}

	// Ensure permissions are enforced even if umask is permissive
	if err := os.Chmod(config.OutputFile, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting file permissions: %v\n", err)
		os.Exit(1)
	}
}
