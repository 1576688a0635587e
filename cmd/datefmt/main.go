package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davejbax/go-datetime"
)

func main() {
	from := flag.String("from", "", "Input layout (e.g. 'YYYY-MM-DD hh:mm:ss'); free-form parsing when empty")
	to := flag.String("to", "", "Output layout; the default rendering when empty")

	flag.Parse()

	values := flag.Args()
	if len(values) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			values = append(values, scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, value := range values {
		out, err := reformat(value, *from, *to)
		if err != nil {
			log.Fatalf("%s: %v", value, err)
		}

		fmt.Println(out)
	}
}

func reformat(value, from, to string) (string, error) {
	var (
		dt  datetime.DateTime
		err error
	)

	if from == "" {
		dt, err = datetime.Parse(value)
	} else {
		dt, err = datetime.ParseLayout(from, value)
	}
	if err != nil {
		return "", err
	}

	if to == "" {
		return dt.String(), nil
	}

	return dt.Format(to), nil
}
