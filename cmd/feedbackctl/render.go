package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Jasvanth78/feedbackforntend/internal/model"
)

func printTemplates(w io.Writer, templates []model.FeedbackTemplate) {
	if len(templates) == 0 {
		fmt.Fprintln(w, "No feedback templates.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tACTIVE\tQUESTIONS\tRESPONSES\tCREATED")
	for _, template := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%d\t%d\t%s\n",
			template.ID,
			template.Title,
			template.IsActive,
			len(template.Questions()),
			template.Count.Responses,
			template.CreatedAt.Format("2006-01-02"),
		)
	}
	tw.Flush()
}

func printResponses(w io.Writer, responses []model.FeedbackResponse) {
	if len(responses) == 0 {
		fmt.Fprintln(w, "No responses yet.")
		return
	}
	for _, response := range responses {
		title := response.TemplateID
		var questions []string
		if response.Template != nil {
			title = response.Template.Title
			questions = response.Template.Questions()
		}
		by := response.UserID
		if response.User != nil {
			by = response.User.Name
			if by == "" {
				by = response.User.Email
			}
		}
		fmt.Fprintf(w, "%s (%d/5) by %s on %s\n", title, response.Rating, by, response.CreatedAt.Format("2006-01-02"))
		for i, answer := range response.Answers() {
			if i < len(questions) {
				fmt.Fprintf(w, "  Q%d: %s\n", i+1, questions[i])
			}
			fmt.Fprintf(w, "  A%d: %s\n", i+1, answer)
		}
		fmt.Fprintln(w)
	}
}

func printUsers(w io.Writer, users []model.User, selfID string) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tRESPONSES\tJOINED")
	for _, user := range users {
		name := user.Name
		if user.ID == selfID {
			name += " (you)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			user.ID,
			name,
			user.Email,
			user.Role,
			user.Count.FeedbackResponses,
			user.CreatedAt.Format("2006-01-02"),
		)
	}
	tw.Flush()
}

// confirm asks on stdin before a destructive action.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// promptAnswers collects one answer per question interactively.
func promptAnswers(questions []string) ([]string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	answers := make([]string, 0, len(questions))
	for i, question := range questions {
		fmt.Printf("Q%d: %s\n> ", i+1, question)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("input closed before all questions were answered")
		}
		answers = append(answers, scanner.Text())
	}
	return answers, nil
}
