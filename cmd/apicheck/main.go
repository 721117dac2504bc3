// Command apicheck guards the published API description. By default it
// checks that every documented operation is served; with -base and -revision
// it checks that a revised description drops nothing clients rely on.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"connectgrower/docs"
)

func main() {
	basePath := flag.String("base", "", "base OpenAPI swagger.yaml path")
	revisionPath := flag.String("revision", "", "revision OpenAPI swagger.yaml path")
	flag.Parse()

	base, revision := strings.TrimSpace(*basePath), strings.TrimSpace(*revisionPath)
	switch {
	case base == "" && revision == "":
		os.Exit(checkRoutes())
	case base == "" || revision == "":
		fmt.Fprintln(os.Stderr, "usage: apicheck [-base <path> -revision <path>]")
		os.Exit(2)
	default:
		os.Exit(checkCompat(base, revision))
	}
}

func checkCompat(basePath, revisionPath string) int {
	baseSpec, err := loadSpecFile(basePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load base spec: %v\n", err)
		return 1
	}
	revisionSpec, err := loadSpecFile(revisionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load revision spec: %v\n", err)
		return 1
	}

	if issues := compare(baseSpec, revisionSpec); len(issues) > 0 {
		report("backward compatibility check failed:", issues)
		return 1
	}
	fmt.Println("openapi compatibility check passed")
	return 0
}

func checkRoutes() int {
	spec, err := parseSpec([]byte(docs.SwaggerInfo.ReadDoc()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse embedded spec: %v\n", err)
		return 1
	}
	served, err := servedRoutes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build route table: %v\n", err)
		return 1
	}

	if issues := missingRoutes(spec, served); len(issues) > 0 {
		report("route check failed:", issues)
		return 1
	}
	fmt.Printf("route check passed: %d documented paths served\n", len(spec.Paths))
	return 0
}

func report(title string, issues []string) {
	fmt.Fprintln(os.Stderr, title)
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "- %s\n", issue)
	}
}
