package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/aulahub/academia/core/report"
)

func (cli *commandLine) report(name string, args []string) error {
	ctx := context.Background()
	fs := flag.NewFlagSet("report "+name, flag.ContinueOnError)
	fs.SetOutput(cli.out)

	switch name {
	case "average":
		stdtID := fs.String("student", "", "The student's id.")
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		id, err := intFlag(fs, "student", *stdtID)
		if err != nil {
			return err
		}
		avg, err := cli.svc.report.StudentAverage(ctx, id)
		if err != nil {
			return err
		}
		return cli.printAverages([]report.StudentAverage{avg})

	case "subjects":
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		lines, err := cli.svc.report.GradesBySubject(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SUBJECT\tSTUDENT\tEXAM\tSCORE")
		for _, l := range lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Subject, l.Student, l.Exam, formatScore(l.Score))
		}
		return tw.Flush()

	case "history":
		stdtID := fs.String("student", "", "The student's id.")
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		id, err := intFlag(fs, "student", *stdtID)
		if err != nil {
			return err
		}
		records, err := cli.svc.report.StudentExamHistory(ctx, id)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tSUBJECT\tEXAM\tSCORE")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ScheduledAt, r.Subject, r.Exam, formatScore(r.Score))
		}
		return tw.Flush()

	case "top":
		n := fs.Int("n", report.DefaultTop, "How many students to list.")
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		avgs, err := cli.svc.report.TopStudents(ctx, *n)
		if err != nil {
			return err
		}
		return cli.printAverages(avgs)

	case "exam":
		examID := fs.String("exam", "", "The exam's id.")
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		id, err := intFlag(fs, "exam", *examID)
		if err != nil {
			return err
		}
		stats, err := cli.svc.report.ExamStatistics(ctx, id)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "GRADES\tAVERAGE\tMIN\tMAX\tSTDDEV")
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", stats.Total,
			formatNullScore(stats.Average), formatNullScore(stats.Min), formatNullScore(stats.Max), formatNullScore(stats.StdDev))
		return tw.Flush()

	case "audit":
		gradeID := fs.Int("grade", 0, "Only list the entries of this grade.")
		if err := fs.Parse(args); err != nil {
			return errHelp
		}
		audits, err := cli.svc.report.GradeAudits(ctx, *gradeID)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tGRADE\tSTUDENT\tEXAM\tSCORE\tOPERATION\tAT")
		for _, a := range audits {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
				a.ID, a.GradeID, a.StudentID, a.ExamID, formatScore(a.Score), a.Operation, a.OperatedAt.Format(time.RFC3339))
		}
		return tw.Flush()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printAverages(avgs []report.StudentAverage) error {
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTUDENT\tAVERAGE")
	for _, a := range avgs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", a.StudentID, a.Name, formatScore(a.Average))
	}
	return tw.Flush()
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatNullScore(f null.Float64) string {
	if !f.Valid {
		return "-"
	}
	return formatScore(f.Float64)
}
