// Package cli implements zlend's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/query"
	"github.com/zarlcorp/zlend/internal/store"
	"github.com/zarlcorp/zlend/internal/userdata"
	"golang.org/x/term"
)

// ErrUserNotFound is returned when no user has the requested id.
var ErrUserNotFound = errors.New("user not found")

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) ([]byte, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return b, nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) ([]byte, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return nil, err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return nil, err
	}
	if string(pass) != string(confirm) {
		return nil, fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// OpenStore prompts for the master password and unlocks the store in dir.
func OpenStore(dir string) (*store.Store, error) {
	var pass []byte
	var err error
	if store.IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, err
	}
	return store.OpenDir(dir, pass)
}

// CmdUsers prints one page of users matching the filter flags.
func CmdUsers(w io.Writer, users []userdata.User, pageSize int, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	patterns := make(map[query.Field]*string, len(query.Fields))
	for _, f := range query.Fields {
		patterns[f] = fs.String(string(f), "", "filter by "+string(f))
	}
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", pageSize, "users per page")
	asJSON := fs.Bool("json", false, "print json")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("users: %w", err)
	}

	if s := *patterns[query.FieldStatus]; s != "" {
		if _, ok := userdata.ParseStatus(s); !ok {
			return fmt.Errorf("users: unknown status %q", s)
		}
	}

	var flt query.Filter
	for f, p := range patterns {
		flt, _ = flt.Set(f, *p)
	}

	tbl := query.NewTable(users, *perPage)
	tbl.ApplyFilter(flt)
	if *page != 1 && !tbl.GoTo(*page) {
		fmt.Fprintf(os.Stderr, "zlend: page %d out of range, showing page 1\n", *page)
	}
	res := tbl.Result()

	if *asJSON {
		return printJSON(w, struct {
			Users         []userdata.User `json:"users"`
			Page          query.Page      `json:"page"`
			TotalMatching int             `json:"total_matching"`
			TotalPages    int             `json:"total_pages"`
		}{res.Users, tbl.Page(), res.TotalMatching, res.TotalPages})
	}

	if res.TotalMatching == 0 {
		fmt.Fprintln(w, "no matching users")
		return nil
	}

	fmt.Fprintf(w, "  %-13s %-12s %-20s %-24s %-11s %-22s %s\n",
		"ID", "ORGANIZATION", "USERNAME", "EMAIL", "PHONE", "DATE JOINED", "STATUS")
	for _, u := range res.Users {
		fmt.Fprintf(w, "  %-13s %-12s %-20s %-24s %-11s %-22s %s\n",
			u.ID, u.Organization, u.Username, u.Email, u.Phone, u.DateJoined, u.Status)
	}
	fmt.Fprintf(w, "\n  showing %d out of %d  page %d/%d\n",
		len(res.Users), res.TotalMatching, tbl.Page().Current, res.TotalPages)
	return nil
}

// CmdUser prints the details of a single user.
func CmdUser(w io.Writer, users []userdata.User, args []string) error {
	fs := flag.NewFlagSet("user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "print json")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: zlend user <id> [--json]")
	}

	id := fs.Arg(0)
	u, ok := userdata.Find(users, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	if *asJSON {
		return printJSON(w, u)
	}
	printUser(w, u)
	return nil
}

// CmdOrgs prints the distinct organizations.
func CmdOrgs(w io.Writer, users []userdata.User) {
	for _, org := range userdata.Organizations(users) {
		fmt.Fprintln(w, org)
	}
}

// CmdStats prints the dashboard figures.
func CmdStats(w io.Writer, users []userdata.User) {
	s := userdata.Summarize(users)
	fmt.Fprintf(w, "  users:              %d\n", s.Users)
	fmt.Fprintf(w, "  active users:       %d\n", s.ActiveUsers)
	fmt.Fprintf(w, "  users with loans:   %d\n", s.UsersWithLoans)
	fmt.Fprintf(w, "  users with savings: %d\n", s.UsersWithSavings)
}

// CmdAction records a blacklist or activate action against a user.
func CmdAction(w io.Writer, users []userdata.User, log *audit.Log, action audit.Action, args []string) error {
	fs := flag.NewFlagSet(string(action), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	operator := fs.String("operator", os.Getenv("USER"), "operator recorded with the action")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: zlend %s [--operator name] <id>", action)
	}

	id := fs.Arg(0)
	if _, ok := userdata.Find(users, id); !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	e, err := log.Record(action, id, *operator)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s recorded (%s)\n", action, id, e.ID)
	return nil
}

// CmdAudit prints recorded actions, newest first.
func CmdAudit(w io.Writer, log *audit.Log, args []string) error {
	asJSON := hasFlag(args, "--json")

	entries, err := log.List()
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(w, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no recorded actions")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %-19s %-10s %-13s %s\n",
			e.At.Format("2006-01-02 15:04:05"), e.Action, e.UserID, e.Operator)
	}
	return nil
}

func printUser(w io.Writer, u userdata.User) {
	section := func(title string) { fmt.Fprintf(w, "\n  %s\n", strings.ToUpper(title)) }
	field := func(label, value string) { fmt.Fprintf(w, "  %-24s %s\n", label, value) }

	fmt.Fprintf(w, "  %s  %s\n", u.Username, u.ID)
	field("tier", userdata.TierStars(u.Tier))
	field("balance", userdata.FormatNaira(u.AccountBalance))
	field("bank", u.BankAccount+"/"+u.BankName)
	field("status", string(u.Status))

	section("personal information")
	field("full name", u.Personal.FullName)
	field("phone number", u.Personal.Phone)
	field("email address", u.Personal.Email)
	field("bvn", u.Personal.BVN)
	field("gender", string(u.Personal.Gender))
	field("marital status", string(u.Personal.MaritalStatus))
	field("children", userdata.ChildrenLabel(u.Personal.Children))
	field("type of residence", string(u.Personal.Residence))

	section("education and employment")
	field("level of education", string(u.Employment.Education))
	field("employment status", string(u.Employment.Status))
	field("sector of employment", string(u.Employment.Sector))
	field("duration of employment", u.Employment.Duration)
	field("office email", u.Employment.OfficeEmail)
	field("monthly income", userdata.FormatIncome(u.Employment.MonthlyIncome))
	field("loan repayment", userdata.FormatNaira(u.Employment.LoanRepayment))

	section("socials")
	field("twitter", userdata.HandleOrNA(u.Socials.Twitter))
	field("facebook", userdata.HandleOrNA(u.Socials.Facebook))
	field("instagram", userdata.HandleOrNA(u.Socials.Instagram))

	section("guarantor")
	field("full name", u.Guarantor.FullName)
	field("phone number", u.Guarantor.Phone)
	field("email address", u.Guarantor.Email)
	field("relationship", string(u.Guarantor.Relationship))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
