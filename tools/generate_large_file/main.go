// Large Org File Generator
//
// This tool generates a large Org file for performance testing and profiling.
// It creates a realistic outline with various elements to stress-test the parser.
//
// Usage:
//
//	go run main.go > large.org
//	go run main.go 20000000 > large.org  # Specify target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	titles = []string{
		"Review quarterly goals", "Fix flaky integration test",
		"Write design document", "Prepare team meeting",
		"Refactor storage layer", "Answer support tickets",
		"Plan conference talk", "Update onboarding notes",
		"Benchmark new parser", "Clean up backlog",
		"Read research paper", "Migrate build pipeline",
		"Draft release notes", "Triage open issues",
	}

	words = []string{
		"the", "project", "needs", "a", "careful", "review", "before",
		"we", "can", "ship", "it", "to", "production", "without",
		"breaking", "existing", "users", "and", "their", "workflows",
		"every", "change", "should", "be", "documented", "in", "detail",
	}

	tags = []string{
		"work", "home", "urgent", "someday", "reading",
		"meeting", "project", "review",
	}

	todoKeywords = []string{"TODO", "NEXT", "WAITING"}
	doneKeywords = []string{"DONE", "CANCELLED"}

	priorities = []rune{'A', 'B', 'C'}

	languages = []string{"go", "python", "shell", "elisp"}

	listBullets = []string{"-", "+", "1."}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	writeHeader()

	baseDate := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	currentDate := baseDate

	bytesWritten := 0
	headlineCount := 0

	for bytesWritten < targetSize {
		// Mix different kinds of content
		switch rand.Intn(10) {
		case 0, 1, 2: // 30% - Headline with paragraph body
			output := generateHeadline(currentDate, 1) + generateParagraph()
			fmt.Print(output)
			bytesWritten += len(output)
			headlineCount++

		case 3, 4: // 20% - Nested subtree
			output := generateSubtree(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			headlineCount += 3

		case 5: // 10% - Headline with clock entries
			output := generateClockedHeadline(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			headlineCount++

		case 6: // 10% - Plain list
			output := generateList()
			fmt.Print(output)
			bytesWritten += len(output)

		case 7: // 10% - Source block
			output := generateSrcBlock()
			fmt.Print(output)
			bytesWritten += len(output)

		case 8: // 10% - Table
			output := generateTable()
			fmt.Print(output)
			bytesWritten += len(output)

		case 9: // 10% - Headline with property drawer
			output := generatePropertyHeadline(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			headlineCount++
		}

		// Advance date by 1-5 days
		currentDate = currentDate.AddDate(0, 0, rand.Intn(5)+1)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d headlines\n", bytesWritten, headlineCount)
}

func writeHeader() {
	fmt.Println("#+TITLE: Performance Test Document")
	fmt.Println("#+AUTHOR: generator")
	fmt.Println("#+TODO: TODO NEXT WAITING | DONE CANCELLED")
	fmt.Println("# Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println()
}

func generateHeadline(date time.Time, level int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("*", level))
	sb.WriteByte(' ')

	switch rand.Intn(4) {
	case 0:
		sb.WriteString(todoKeywords[rand.Intn(len(todoKeywords))])
		sb.WriteByte(' ')
	case 1:
		sb.WriteString(doneKeywords[rand.Intn(len(doneKeywords))])
		sb.WriteByte(' ')
	}

	if rand.Intn(4) == 0 {
		fmt.Fprintf(&sb, "[#%c] ", priorities[rand.Intn(len(priorities))])
	}

	sb.WriteString(titles[rand.Intn(len(titles))])

	if rand.Intn(3) == 0 {
		fmt.Fprintf(&sb, " :%s:", tags[rand.Intn(len(tags))])
	}

	sb.WriteByte('\n')

	if rand.Intn(3) == 0 {
		fmt.Fprintf(&sb, "SCHEDULED: <%s>\n", date.Format("2006-01-02 Mon"))
	}

	return sb.String()
}

func generateSubtree(date time.Time) string {
	var sb strings.Builder
	sb.WriteString(generateHeadline(date, 1))
	sb.WriteString(generateParagraph())
	sb.WriteString(generateHeadline(date, 2))
	sb.WriteString(generateParagraph())
	sb.WriteString(generateHeadline(date, 3))
	sb.WriteString(generateParagraph())
	return sb.String()
}

func generateClockedHeadline(date time.Time) string {
	var sb strings.Builder
	sb.WriteString(generateHeadline(date, 1))
	sb.WriteString(":LOGBOOK:\n")

	entries := rand.Intn(3) + 1
	for i := 0; i < entries; i++ {
		start := date.Add(time.Duration(i*3) * time.Hour)
		minutes := rand.Intn(170) + 10
		end := start.Add(time.Duration(minutes) * time.Minute)
		fmt.Fprintf(&sb, "CLOCK: [%s]--[%s] =>  %d:%02d\n",
			start.Format("2006-01-02 Mon 15:04"),
			end.Format("2006-01-02 Mon 15:04"),
			minutes/60, minutes%60)
	}

	sb.WriteString(":END:\n")
	return sb.String()
}

func generatePropertyHeadline(date time.Time) string {
	var sb strings.Builder
	sb.WriteString(generateHeadline(date, 1))
	sb.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&sb, ":ID: %08x\n", rand.Uint32())
	fmt.Fprintf(&sb, ":EFFORT: %d:00\n", rand.Intn(8)+1)
	sb.WriteString(":END:\n")
	sb.WriteString(generateParagraph())
	return sb.String()
}

func generateParagraph() string {
	count := rand.Intn(25) + 10
	picked := make([]string, count)
	for i := range picked {
		picked[i] = words[rand.Intn(len(words))]
	}
	return strings.Join(picked, " ") + ".\n\n"
}

func generateList() string {
	var sb strings.Builder
	bullet := listBullets[rand.Intn(len(listBullets))]
	items := rand.Intn(4) + 2

	for i := 0; i < items; i++ {
		b := bullet
		if b == "1." {
			b = fmt.Sprintf("%d.", i+1)
		}
		if rand.Intn(3) == 0 {
			fmt.Fprintf(&sb, "%s [%s] %s\n", b, checkbox(), titles[rand.Intn(len(titles))])
		} else {
			fmt.Fprintf(&sb, "%s %s\n", b, titles[rand.Intn(len(titles))])
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}

func checkbox() string {
	if rand.Intn(2) == 0 {
		return "X"
	}
	return " "
}

func generateSrcBlock() string {
	lang := languages[rand.Intn(len(languages))]
	return fmt.Sprintf(`#+BEGIN_SRC %s
func main() {
	fmt.Println("sample %d")
}
#+END_SRC

`, lang, rand.Intn(1000))
}

func generateTable() string {
	var sb strings.Builder
	sb.WriteString("| Task | Estimate | Spent |\n")
	sb.WriteString("|------+----------+-------|\n")

	rows := rand.Intn(4) + 2
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "| %s | %d:00 | %d:%02d |\n",
			titles[rand.Intn(len(titles))], rand.Intn(8)+1, rand.Intn(8), rand.Intn(60))
	}

	sb.WriteByte('\n')
	return sb.String()
}
