package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/loco-pilot/internal/ui/styles"
)

// ErrNoBranches is returned when there is nothing to select from
var ErrNoBranches = errors.New("no git branches found")

// ErrInvalidSelection is returned for non-numeric or out of range input
var ErrInvalidSelection = errors.New("invalid selection")

// SelectNumbered prints branches as a numbered menu to out and reads one
// line from in. There is no retry: bad input returns ErrInvalidSelection.
// environ decides the color profile of the menu, as in os.Environ.
func SelectNumbered(in io.Reader, out io.Writer, environ []string, branches []string) (string, error) {
	if len(branches) == 0 {
		return "", ErrNoBranches
	}

	w := colorprofile.NewWriter(out, environ)
	fmt.Fprintln(w, styles.TitleStyle.Render("Select a branch to copy:"))
	for i, b := range branches {
		fmt.Fprintf(w, "%s %s\n", styles.IndexStyle.Render(strconv.Itoa(i+1)+"."), b)
	}
	fmt.Fprintf(w, "Enter number (1-%d): ", len(branches))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(branches) {
		return "", ErrInvalidSelection
	}
	return branches[n-1], nil
}

// FilterBranches returns the branches matching query, best match first.
// An empty query returns branches unchanged.
func FilterBranches(query string, branches []string) []string {
	if query == "" {
		return branches
	}

	matches := fuzzy.Find(query, branches)
	filtered := make([]string, len(matches))
	for i, m := range matches {
		filtered[i] = m.Str
	}
	return filtered
}
