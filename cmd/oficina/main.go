// Command oficina is a terminal client that walks one student through the
// workshop against a running API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/workshop"
)

const defaultAPIURL = "http://localhost:8080"

var (
	title   = color.New(color.FgMagenta, color.Bold)
	info    = color.New(color.FgCyan)
	warn    = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
)

func main() {
	_ = godotenv.Load()
	baseURL := os.Getenv("OFICINA_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	backend := workshop.NewHTTPBackend(baseURL, nil)
	session := workshop.NewSession(backend)
	in := bufio.NewScanner(os.Stdin)

	title.Println("Oficina de Poemas")
	for {
		var err error
		switch session.Stage() {
		case workshop.StageInterest:
			err = interestStep(session, in)
		case workshop.StageTheme:
			err = themeStep(session, in)
		case workshop.StageWriting:
			err = writingStep(session, in)
		case workshop.StageExport:
			var done bool
			done, err = exportStep(session, in)
			if done {
				return
			}
		}
		if errors.Is(err, errQuit) {
			return
		}
		if notice := session.Snapshot().Notice; notice != "" {
			warn.Println(notice)
		}
	}
}

var errQuit = errors.New("quit")

func prompt(in *bufio.Scanner, label string) (string, error) {
	info.Print(label)
	if !in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(in.Text()), nil
}

func call[T any](fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	return fn(ctx)
}

func interestStep(s *workshop.Session, in *bufio.Scanner) error {
	line, err := prompt(in, "Do que você gosta? ")
	if err != nil {
		return err
	}
	_, err = call(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.SubmitInterest(ctx, line)
	})
	return err
}

func themeStep(s *workshop.Session, in *bufio.Scanner) error {
	snap := s.Snapshot()
	title.Println("Escolha um tema (ou digite o seu; 'voltar' retorna):")
	for i, t := range snap.Themes {
		fmt.Printf("  %d. %s\n", i+1, t)
	}
	line, err := prompt(in, "> ")
	if err != nil {
		return err
	}
	if line == "voltar" {
		return s.Back()
	}
	if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(snap.Themes) {
		line = snap.Themes[n-1]
	}
	_, err = call(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.SelectTheme(ctx, line)
	})
	return err
}

func writingStep(s *workshop.Session, in *bufio.Scanner) error {
	snap := s.Snapshot()
	title.Printf("Tema: %s\n", snap.ChosenTheme)
	for _, idea := range snap.Ideas {
		fmt.Printf("  - %s\n", idea)
	}
	fmt.Printf("%d versos, %d estrofes\n", snap.Stats.Verses, snap.Stats.Stanzas)
	info.Println("Comandos: escrever, rima <palavra>, ortografia, corrigir <n> <sugestão>, ignorar <n>, terminar, voltar")

	line, err := prompt(in, "> ")
	if err != nil {
		return err
	}
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case "escrever":
		info.Println("Digite o poema. Termine com uma linha contendo apenas '.'")
		var lines []string
		for in.Scan() && in.Text() != "." {
			lines = append(lines, in.Text())
		}
		return s.SetPoemText(strings.Join(lines, "\n"))
	case "rima":
		rhymes, err := call(func(ctx context.Context) ([]rhyme.Rhyme, error) {
			return s.LookupRhymes(ctx, arg)
		})
		for _, r := range rhymes {
			fmt.Printf("  %s: %s\n", r.Palavra, r.Definicao)
		}
		return err
	case "ortografia":
		corrections, err := call(s.CheckSpelling)
		if err == nil && len(corrections) == 0 {
			success.Println("Nenhum erro encontrado.")
		}
		for i, c := range corrections {
			fmt.Printf("  %d. verso %d: %q -> %s (%s)\n", i+1, c.VerseNumber, c.Original, strings.Join(c.Suggestions, ", "), c.Reason)
		}
		return err
	case "corrigir":
		idx, suggestion, _ := strings.Cut(arg, " ")
		n, _ := strconv.Atoi(idx)
		applied, err := s.ApplyCorrection(n-1, strings.TrimSpace(suggestion))
		if err == nil && !applied {
			warn.Println("A palavra não foi encontrada no verso indicado.")
		}
		return err
	case "ignorar":
		n, _ := strconv.Atoi(arg)
		return s.DismissCorrection(n - 1)
	case "terminar":
		return s.Finish()
	case "voltar":
		return s.Back()
	}
	return nil
}

func exportStep(s *workshop.Session, in *bufio.Scanner) (bool, error) {
	poemTitle, err := prompt(in, "Título: ")
	if err != nil {
		return false, err
	}
	author, err := prompt(in, "Autor(a): ")
	if err != nil {
		return false, err
	}
	doc, err := call(func(ctx context.Context) (*export.Document, error) {
		return s.SubmitExport(ctx, poemTitle, author)
	})
	if err != nil {
		return false, err
	}

	path := filepath.Base(doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		warn.Printf("Não foi possível salvar %s: %v\n", path, err)
		return false, err
	}
	success.Printf("Poema salvo em %s\n", path)
	return true, nil
}
