package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"wd_utils_go/config"
	"wd_utils_go/models"
	"wd_utils_go/services"
	"wd_utils_go/services/documents"
	"wd_utils_go/services/i18n"
)

const usage = `usage: wdcheck <command> [args]

commands:
  doc <value>...               validate CPF/CNPJ numbers (type detected by length)
  cpf <value>...               validate CPF numbers
  cnpj <value>...              validate CNPJ numbers
  email <value>...             validate e-mail addresses
  birthdate <DD/MM/YYYY>...    validate birth dates
  convert <from> <to> <date>   convert a date between JS, BR and USA layouts
  today                        print today, yesterday and month boundaries
  legacy <token>               decode a /Date(ms+HHMM)/ token
  serial <number>              decode a spreadsheet serial date
  mask <kind> <value>          apply an input mask (cpf, cnpj, cep, phone, date, datetime, hour, currency)
  file <path>...               sniff file types and check them against the document upload rules
`

func main() {
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Printf("[WARNING] Failed to load locales: %v", err)
	}

	os.Exit(run(os.Args[1:], cfg, os.Stdout))
}

// run executes one command and returns the process exit code:
// 0 on success, 1 when any value is invalid, 2 on usage errors
func run(args []string, cfg *config.Config, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "doc":
		return validateEach(rest, cfg, out, func(v string) (string, bool) {
			docType, ok := documents.Detect(v)
			if !ok {
				return "document", false
			}
			return strings.ToUpper(docType.String()), documents.Validate(docType, v)
		})
	case "cpf":
		return validateEach(rest, cfg, out, labeled("CPF", documents.ValidateCPF))
	case "cnpj":
		return validateEach(rest, cfg, out, labeled("CNPJ", documents.ValidateCNPJ))
	case "email":
		return validateEach(rest, cfg, out, labeled("e-mail", documents.ValidateEmail))
	case "birthdate":
		return validateEach(rest, cfg, out, labeled("date", documents.ValidateBirthDate))
	case "convert":
		return convert(rest, out)
	case "today":
		return today(cfg, out)
	case "legacy":
		return legacy(rest, cfg, out)
	case "serial":
		return serial(rest, cfg, out)
	case "mask":
		return mask(rest, out)
	case "file":
		return inspectFiles(rest, out)
	default:
		log.Printf("[WDCHECK] Unknown command: %s", cmd)
		fmt.Fprint(out, usage)
		return 2
	}
}

func labeled(label string, fn func(string) bool) func(string) (string, bool) {
	return func(v string) (string, bool) {
		return label, fn(v)
	}
}

func validateEach(values []string, cfg *config.Config, out io.Writer, check func(string) (string, bool)) int {
	if len(values) == 0 {
		fmt.Fprint(out, usage)
		return 2
	}

	code := 0
	for _, v := range values {
		label, ok := check(v)
		key := "documents.valid"
		if !ok {
			key = "documents.invalid"
			code = 1
		}
		msg := i18n.Translate(cfg.Language, key, map[string]interface{}{"type": label})
		fmt.Fprintf(out, "%s\t%s\n", v, msg)
		if cfg.Verbose {
			log.Printf("[WDCHECK] %s -> %t", v, ok)
		}
	}
	return code
}

func convert(args []string, out io.Writer) int {
	if len(args) != 3 {
		fmt.Fprint(out, usage)
		return 2
	}

	from, err := models.ParseDateFormat(args[0])
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 2
	}
	to, err := models.ParseDateFormat(args[1])
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 2
	}

	converted, err := services.ConvertDate(args[2], from, to)
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 1
	}
	fmt.Fprintln(out, converted)
	return 0
}

func today(cfg *config.Config, out io.Writer) int {
	helper := services.NewDateHelper(cfg.Now)
	now := cfg.Now()

	fmt.Fprintf(out, "today\t%s\n", helper.Today())
	fmt.Fprintf(out, "yesterday\t%s\n", helper.Yesterday())
	fmt.Fprintf(out, "first_day_of_month\t%s\n", helper.FirstDayOfMonth())
	fmt.Fprintf(out, "last_day_previous_month\t%s\n", helper.LastDayPreviousMonth())
	fmt.Fprintf(out, "now\t%s\n", helper.NowTime())
	fmt.Fprintf(out, "weekday\t%s\n", i18n.WeekdayName(cfg.Language, now.Weekday()))
	fmt.Fprintf(out, "month\t%s\n", i18n.MonthName(cfg.Language, now.Month()))
	return 0
}

func legacy(args []string, cfg *config.Config, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprint(out, usage)
		return 2
	}

	t, err := services.ParseLegacyDateToken(args[0])
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 1
	}
	return printDate(t.In(cfg.Location()), cfg, out)
}

func serial(args []string, cfg *config.Config, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprint(out, usage)
		return 2
	}

	n, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		log.Printf("[WDCHECK] Invalid serial number %q: %v", args[0], err)
		return 2
	}

	t, err := services.ParseSpreadsheetSerial(n)
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 1
	}
	return printDate(t, cfg, out)
}

func printDate(t time.Time, cfg *config.Config, out io.Writer) int {
	formatted, err := services.FormatDate(t, cfg.DateFormat, cfg.TimeMode)
	if err != nil {
		log.Printf("[WDCHECK] %v", err)
		return 1
	}
	fmt.Fprintln(out, formatted)
	return 0
}

func mask(args []string, out io.Writer) int {
	if len(args) != 2 {
		fmt.Fprint(out, usage)
		return 2
	}

	kind, value := args[0], args[1]
	var masked string
	switch kind {
	case "cpf":
		masked = services.FormatCPF(value)
	case "cnpj":
		masked = services.FormatCNPJ(value)
	case "cep":
		masked = services.FormatCEP(value)
	case "phone":
		masked = services.FormatPhone(value)
	case "date":
		masked = services.FormatDateMask(value)
	case "datetime":
		masked = services.FormatDateTimeMask(value)
	case "hour":
		masked = services.FormatHourMinute(value)
	case "currency":
		n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		if err != nil {
			log.Printf("[WDCHECK] Invalid amount %q: %v", value, err)
			return 2
		}
		masked = services.FormatCurrency(n)
	default:
		log.Printf("[WDCHECK] Unknown mask: %s", kind)
		return 2
	}

	fmt.Fprintln(out, masked)
	return 0
}

func inspectFiles(paths []string, out io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprint(out, usage)
		return 2
	}

	code := 0
	for _, path := range paths {
		info, err := services.InspectFile(path)
		if err != nil {
			log.Printf("[WDCHECK] %v", err)
			code = 1
			continue
		}

		status := "ok"
		if err := services.CheckFile(info, services.DocumentRules); err != nil {
			status = err.Error()
			code = 1
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", path, info.DetectedMime, info.FormattedSize, status)
	}
	return code
}
