package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SimpleResult:
		o.printSimpleResult(v)
	case LoginResult:
		o.printLoginResult(v)
	case UserView:
		o.printUser(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSimpleResult(r SimpleResult) {
	if r.Success {
		fmt.Println("OK")
	} else {
		fmt.Println("Failed")
	}
}

func (o *Output) printLoginResult(r LoginResult) {
	fmt.Println("Logged in")
	o.printUser(r.User)
	fmt.Printf("Token: %s\n", r.Token)
}

func (o *Output) printUser(u UserView) {
	fmt.Printf("Username: %s\n", u.Username)
	if u.ProfilePicture != nil {
		fmt.Printf("Profile picture: %s\n", *u.ProfilePicture)
	}
	fmt.Printf("Created: %s\n", u.CreatedAt)
	fmt.Printf("Coins: %d\n", u.GameData.Coins)
	if len(u.GameData.Achievements) > 0 {
		fmt.Printf("Achievements: %s\n", strings.Join(u.GameData.Achievements, ", "))
	}
	if len(u.GameData.OwnedTracks) > 0 {
		fmt.Printf("Owned tracks: %s\n", strings.Join(u.GameData.OwnedTracks, ", "))
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Timestamp: %s\n", r.Timestamp)
}
