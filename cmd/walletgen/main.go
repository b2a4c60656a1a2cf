// Package main provides the walletgen CLI tool for generating a seed phrase
// and deriving Solana and Ethereum wallets from it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/complex-gh/walletgen"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	language    string
	wordCount   int
	chainsStr   string
	passphrase  string
	hideSecrets bool
	jsonOutput  bool

	rootCmd = &cobra.Command{
		Use:   "walletgen",
		Short: "Generate a seed phrase and derive Solana and Ethereum wallets",
		Long: `Generate a BIP-39 seed phrase and derive one wallet per chain from it.

Solana wallets follow m/44'/501'/0'/0' (SLIP-0010 ed25519).
Ethereum wallets follow m/44'/60'/0'/0/0 (BIP-32 secp256k1).
Bitcoin (m/44'/0'/0'/0/0) and Nostr (NIP-06) can be added with --chains.

Valid word counts are: 12, 15, 18, 21, or 24.

A chain that fails to derive is reported inline; the other chains are still
printed.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. Most shells (bash, zsh) are configured to
ignore commands that start with a space. Check your HISTCONTROL or
HIST_IGNORE_SPACE settings.`,
		Example: `  walletgen
  walletgen --words 24
  walletgen --chains sol,eth,btc,nostr
  walletgen --json --hide-secrets
  walletgen derive abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about
  echo "your seed phrase" | walletgen derive`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: applyEnvDefaults,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(os.Stdout)
		},
	}

	generateCmd = &cobra.Command{
		Use:          "generate",
		Short:        "Generate a new seed phrase and derive wallets from it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(os.Stdout)
		},
	}

	deriveCmd = &cobra.Command{
		Use:   "derive [words...]",
		Short: "Derive wallets from an existing seed phrase",
		Long: `Derive wallets from an existing seed phrase.

The phrase is taken from the arguments, from stdin when it is a pipe, or
read from the terminal without echo.`,
		Example: `  walletgen derive
  walletgen derive --chains eth < phrase.txt`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			mnemonic, err := readMnemonic(args)
			if err != nil {
				return err
			}
			return runDerive(os.Stdout, mnemonic)
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for walletgen.

To load completions:

Bash:
  $ source <(walletgen completion bash)

Zsh:
  $ walletgen completion zsh > "${fpath[1]}/_walletgen"

Fish:
  $ walletgen completion fish | source

PowerShell:
  PS> walletgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Word list language")
	rootCmd.PersistentFlags().IntVarP(&wordCount, "words", "w", walletgen.DefaultWordCount, "Word count of generated phrases (12, 15, 18, 21 or 24)")
	rootCmd.PersistentFlags().StringVarP(&chainsStr, "chains", "c", "solana,ethereum", "Chains to derive (comma-separated: solana,ethereum,bitcoin,nostr)")
	rootCmd.PersistentFlags().StringVar(&passphrase, "passphrase", "", "Optional BIP-39 passphrase")
	rootCmd.PersistentFlags().BoolVar(&hideSecrets, "hide-secrets", false, "Print addresses only")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of text")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newDeriver builds a Deriver from the current flag values.
func newDeriver() (*walletgen.Deriver, error) {
	chains, err := parseChains(chainsStr)
	if err != nil {
		return nil, err
	}
	d, err := walletgen.New(
		walletgen.WithChains(chains...),
		walletgen.WithWordCount(wordCount),
		walletgen.WithPassphrase(passphrase),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return d, nil
}

func runGenerate(w io.Writer) error {
	if err := setLanguage(language); err != nil {
		return err
	}
	d, err := newDeriver()
	if err != nil {
		return err
	}

	mnemonic, set, err := d.Generate()
	if err != nil {
		return formatError(err)
	}
	return printResult(w, mnemonic, set)
}

func runDerive(w io.Writer, mnemonic string) error {
	if err := setLanguage(language); err != nil {
		return err
	}
	d, err := newDeriver()
	if err != nil {
		return err
	}

	set, err := d.Derive(mnemonic)
	if err != nil {
		return formatError(err)
	}
	return printResult(w, "", set)
}

// parseChains parses a comma-separated list of chain names or tickers.
func parseChains(s string) ([]walletgen.Chain, error) {
	var chains []walletgen.Chain
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, ok := walletgen.ChainByName(part)
		if !ok {
			return nil, fmt.Errorf("unknown chain %q (must be one of solana, ethereum, bitcoin, nostr)", part)
		}
		chains = append(chains, c)
	}
	if len(chains) == 0 {
		return walletgen.DefaultChains(), nil
	}
	return chains, nil
}

// parseWordCount parses and validates a word count.
func parseWordCount(s string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid word count %q: %w", s, err)
	}
	for _, valid := range walletgen.ValidWordCounts() {
		if count == valid {
			return count, nil
		}
	}
	return 0, fmt.Errorf("invalid word count: %d (must be 12, 15, 18, 21, or 24)", count)
}

// readMnemonic returns the phrase from args, from piped stdin, or from a
// hidden terminal prompt, in that order.
func readMnemonic(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		bts, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read seed phrase: %w", err)
		}
		if strings.TrimSpace(string(bts)) == "" {
			return "", errors.New("no seed phrase given on stdin")
		}
		return string(bts), nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errors.New("no seed phrase given: pass it as arguments or on stdin")
	}
	phrase, err := promptHidden("Enter the seed phrase: ")
	if err != nil {
		return "", err
	}
	defer clear(phrase)
	return string(phrase), nil
}

// promptHidden writes prompt to the controlling terminal and reads one line
// without echo. Reading from the tty keeps the prompt working when stdout is
// redirected.
func promptHidden(prompt string) ([]byte, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close() //nolint: errcheck

	if _, err := io.WriteString(t.Output(), prompt); err != nil {
		return nil, fmt.Errorf("could not write prompt: %w", err)
	}
	phrase, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	_, _ = io.WriteString(t.Output(), "\n")
	if err != nil {
		return nil, fmt.Errorf("could not read seed phrase: %w", err)
	}
	return phrase, nil
}

// setLanguage selects the word list used to generate and validate phrases.
func setLanguage(name string) error {
	list := getWordlist(name)
	if list == nil {
		return fmt.Errorf("unsupported word list language %q", name)
	}
	bip39.SetWordList(list)
	return nil
}

// wordLists maps a base language to its BIP-39 word list. Chinese maps to
// the simplified list unless the tag asks for the traditional script.
var wordLists = map[string][]string{
	"cs": wordlists.Czech,
	"en": wordlists.English,
	"es": wordlists.Spanish,
	"fr": wordlists.French,
	"it": wordlists.Italian,
	"ja": wordlists.Japanese,
	"ko": wordlists.Korean,
	"zh": wordlists.ChineseSimplified,
}

// wordListLanguages are the tags matched against English language names.
var wordListLanguages = []lang.Tag{
	lang.Czech,
	lang.English,
	lang.Spanish,
	lang.French,
	lang.Italian,
	lang.Japanese,
	lang.Korean,
	lang.SimplifiedChinese,
	lang.TraditionalChinese,
}

// getWordlist resolves a BCP 47 tag ("en", "es-419", "zh-TW") or an English
// language name ("spanish", "traditional chinese") to a word list. It
// returns nil for anything else.
func getWordlist(name string) []string {
	tag, ok := languageByName(name)
	if !ok {
		t, err := lang.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil
		}
		tag = t
	}

	base, _ := tag.Base()
	if base.String() == "zh" {
		if script, _ := tag.Script(); script.String() == "Hant" {
			return wordlists.ChineseTraditional
		}
	}
	return wordLists[base.String()]
}

func languageByName(name string) (lang.Tag, bool) {
	want := normalizeLanguageName(name)
	namer := display.English.Languages()
	for _, t := range wordListLanguages {
		if normalizeLanguageName(namer.Name(t)) == want {
			return t, true
		}
	}
	return lang.Und, false
}

func normalizeLanguageName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
