package interactive

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MOYARU/urt/internal/app/output"
	"github.com/MOYARU/urt/internal/app/triage"
	"github.com/MOYARU/urt/internal/app/ui"
	"github.com/MOYARU/urt/internal/config"
	msges "github.com/MOYARU/urt/internal/messages"
	"github.com/MOYARU/urt/internal/report"
	"github.com/MOYARU/urt/internal/score"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultPolicyPath = ".urt.yaml"

// RunInteractiveMode runs the prompt loop used when no input file is given.
func RunInteractiveMode(cmdObj *cobra.Command) {
	ui.PrintGradientAsciiArt()

	helpText := cmdObj.Long
	helpText = strings.Replace(helpText, ui.AsciiArt, "", 1)
	fmt.Println(helpText)

	fmt.Println()
	fmt.Printf("%s%s%s\n", ui.ColorGray, msges.GetUIMessage("InteractiveWelcome"), ui.ColorReset)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println("Failed to enter raw mode:", err)
		return
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	var cmdBuffer []rune
	var cursorPos int
	history := []string{}
	historyIndex := 0
	readBuf := make([]byte, 1024)

Loop:
	for {
		fmt.Print("\r\033[K" + prompt() + string(cmdBuffer))
		if moveBack := len(cmdBuffer) - cursorPos; moveBack > 0 {
			fmt.Printf("\033[%dD", moveBack)
		}

		n, err := os.Stdin.Read(readBuf)
		if err != nil {
			break
		}

		// Arrow keys arrive as ESC [ A..D
		if n >= 3 && readBuf[0] == 27 && readBuf[1] == 91 {
			switch readBuf[2] {
			case 65: // Up
				if historyIndex > 0 {
					historyIndex--
					cmdBuffer = []rune(history[historyIndex])
					cursorPos = len(cmdBuffer)
				}
			case 66: // Down
				if historyIndex < len(history)-1 {
					historyIndex++
					cmdBuffer = []rune(history[historyIndex])
					cursorPos = len(cmdBuffer)
				} else {
					historyIndex = len(history)
					cmdBuffer = []rune{}
					cursorPos = 0
				}
			case 68: // Left
				if cursorPos > 0 {
					cursorPos--
				}
			case 67: // Right
				if cursorPos < len(cmdBuffer) {
					cursorPos++
				}
			}
			continue
		}

		inputRunes := []rune(string(readBuf[:n]))
		for _, char := range inputRunes {
			switch char {
			case 3: // Ctrl+C
				term.Restore(int(os.Stdin.Fd()), oldState)
				fmt.Println()
				return
			case 13, 10: // Enter
				term.Restore(int(os.Stdin.Fd()), oldState)
				fmt.Println()
				line := strings.TrimSpace(string(cmdBuffer))
				if len(line) > 0 {
					history = append(history, line)
					historyIndex = len(history)
				}
				cmdBuffer = []rune{}
				cursorPos = 0

				if processCommand(line) {
					return // Exit requested
				}
				oldState, _ = term.MakeRaw(int(os.Stdin.Fd()))
				continue Loop
			case 127, 8: // Backspace
				if cursorPos > 0 {
					cmdBuffer = append(cmdBuffer[:cursorPos-1], cmdBuffer[cursorPos:]...)
					cursorPos--
				}
			default:
				if char >= 32 {
					cmdBuffer = append(cmdBuffer, 0)
					copy(cmdBuffer[cursorPos+1:], cmdBuffer[cursorPos:])
					cmdBuffer[cursorPos] = char
					cursorPos++
				}
			}
		}
	}
}

func prompt() string {
	return fmt.Sprintf("%surt > %s", ui.ColorGray, ui.ColorReset)
}

func processCommand(line string) bool {
	if line == "exit" || line == "quit" {
		fmt.Printf("%s%s%s\n", ui.ColorGray, msges.GetUIMessage("InteractiveExit"), ui.ColorReset)
		return true
	}

	if line == "clear" || line == "cls" {
		fmt.Print("\033[H\033[2J")
		return false
	}

	if line == "help" {
		fmt.Printf("%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("InteractiveHelp"), ui.ColorReset)
		fmt.Printf("%s  triage <input_file> [--output path] [--threshold 0.5] [--top N] [--json]%s\n", ui.ColorGray, ui.ColorReset)
		fmt.Printf("%s  score <url>%s\n", ui.ColorGray, ui.ColorReset)
		fmt.Printf("%s  policy show | set <key> <value> | save [path] | load [path]%s\n", ui.ColorGray, ui.ColorReset)
		fmt.Printf("%s  help%s\n", ui.ColorGray, ui.ColorReset)
		fmt.Printf("%s  clear / cls%s\n", ui.ColorGray, ui.ColorReset)
		fmt.Printf("%s  exit / quit%s\n", ui.ColorGray, ui.ColorReset)
		return false
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	command := parts[0]
	cmdArgs := parts[1:]

	switch command {
	case "triage", "urt":
		if len(cmdArgs) == 0 {
			fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("InteractiveErrorInput", command), ui.ColorReset)
			return false
		}

		inputPath := cmdArgs[0]
		policy := config.LoadTriagePolicy()
		outputPath, threshold, top, jsonOut, err := parseTriageFlags(cmdArgs[1:], policy)
		if err != nil {
			fmt.Printf("%s%s%s\n", ui.ColorRed, err, ui.ColorReset)
			return false
		}

		if err := triage.RunTriage(inputPath, outputPath, threshold, top, jsonOut, true); err != nil {
			fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("InteractiveTriageFailed", err), ui.ColorReset)
		}
	case "score":
		handleScore(cmdArgs)
	case "policy":
		handlePolicy(cmdArgs)
	default:
		fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("InteractiveErrorUnknown", command), ui.ColorReset)
	}
	return false
}

// flag parsing helper
func parseTriageFlags(args []string, policy config.TriagePolicy) (string, float64, int, bool, error) {
	outputPath := policy.Output
	threshold := policy.Threshold
	top := policy.TopSuspicious
	jsonOut := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--json":
			jsonOut = true
		case "--output":
			if i+1 < len(args) {
				outputPath = args[i+1]
				i++
			}
		case "--threshold":
			if i+1 < len(args) {
				if v, err := strconv.ParseFloat(args[i+1], 64); err == nil {
					threshold = v
					i++
				}
			}
		case "--top":
			if i+1 < len(args) {
				if v, err := strconv.Atoi(args[i+1]); err == nil {
					top = v
					i++
				}
			}
		default:
			return "", 0, 0, false, errors.New(msges.GetUIMessage("InteractiveErrorUnknownFlag", arg))
		}
	}
	return outputPath, threshold, top, jsonOut, nil
}

// handleScore scores a single URL and explains every signal that fired.
func handleScore(args []string) {
	if len(args) < 1 {
		fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("InteractiveScoreUsage"), ui.ColorReset)
		return
	}

	raw := args[0]
	policy := config.LoadTriagePolicy()
	value, reasons := score.Score(raw)
	label := score.Label(value, policy.Threshold)
	band := report.BandFor(value)

	labelColor := ui.ColorGreen
	if label == score.LabelPhishing {
		labelColor = ui.ColorRed
	}
	fmt.Printf("\n%s[%s] (%s) %s%s\n", labelColor, strings.ToUpper(label), output.FormatScore(value), raw, ui.ColorReset)
	fmt.Printf("%s - %s: %s%s\n", ui.ColorGray, msges.GetUIMessage("ConsoleScoreLabel"), band, ui.ColorReset)
	if len(reasons) == 0 {
		fmt.Printf("%s - %s: -%s\n", ui.ColorGray, msges.GetUIMessage("ConsoleReasonLabel"), ui.ColorReset)
		return
	}
	for _, tag := range reasons {
		detail := msges.GetReasonDetail(tag)
		fmt.Printf("%s - %s (%s): %s%s\n", ui.ColorGray, tag, detail.Title, detail.Message, ui.ColorReset)
	}
}

func handlePolicy(args []string) {
	if len(args) == 0 {
		fmt.Printf("%sUsage: policy show | set <key> <value> | save [path] | load [path]%s\n", ui.ColorRed, ui.ColorReset)
		return
	}

	switch args[0] {
	case "show":
		p := config.LoadTriagePolicy()
		fmt.Printf("%sPolicy (%s):%s\n", ui.ColorGreen, defaultPolicyPath, ui.ColorReset)
		fmt.Printf(" - threshold: %v\n", p.Threshold)
		fmt.Printf(" - top_suspicious: %d\n", p.TopSuspicious)
		fmt.Printf(" - output: %s\n", p.Output)
	case "set":
		if len(args) < 3 {
			fmt.Printf("%sUsage: policy set <key> <value>%s\n", ui.ColorRed, ui.ColorReset)
			return
		}
		if err := updatePolicyKey(defaultPolicyPath, args[1], args[2]); err != nil {
			fmt.Printf("%sFailed to update policy: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			return
		}
		fmt.Printf("%sUpdated %s in %s%s\n", ui.ColorGreen, args[1], defaultPolicyPath, ui.ColorReset)
	case "save":
		path := defaultPolicyPath
		if len(args) > 1 {
			path = args[1]
		}
		p := config.LoadTriagePolicy()
		if err := writePolicyFile(path, p); err != nil {
			fmt.Printf("%sFailed to save policy: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			return
		}
		fmt.Printf("%sSaved policy to %s%s\n", ui.ColorGreen, path, ui.ColorReset)
	case "load":
		path := defaultPolicyPath
		if len(args) > 1 {
			path = args[1]
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("%sFailed to load policy: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			return
		}
		fmt.Printf("%sPolicy file is available: %s%s\n", ui.ColorGreen, path, ui.ColorReset)
	default:
		fmt.Printf("%sUnknown policy command: %s%s\n", ui.ColorRed, args[0], ui.ColorReset)
	}
}

func updatePolicyKey(path, key, value string) error {
	p := config.LoadTriagePolicy()
	switch key {
	case "threshold":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 || v > 1 {
			return fmt.Errorf("threshold must be a number in [0, 1]")
		}
		p.Threshold = v
	case "top_suspicious":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("top_suspicious must be integer >= 1")
		}
		p.TopSuspicious = n
	case "output":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("output must be a file path")
		}
		p.Output = value
	default:
		return fmt.Errorf("unknown policy key: %s", key)
	}
	return writePolicyFile(path, p)
}

func writePolicyFile(path string, p config.TriagePolicy) error {
	content := strings.Join([]string{
		"# URT triage policy",
		"",
		fmt.Sprintf("threshold: %v", p.Threshold),
		fmt.Sprintf("top_suspicious: %d", p.TopSuspicious),
		fmt.Sprintf("output: %s", p.Output),
		"",
	}, "\n")
	return os.WriteFile(path, []byte(content), 0o644)
}
