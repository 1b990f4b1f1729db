package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// ----------------------------------------------------------------------------
// Config ---------------------------------------------------------------------
var (
	baseURL   = flag.String("url", env("API_BASE_URL", "http://localhost:3000"), "Server base URL")
	email     = flag.String("email", env("EMAIL", "demo@example.com"), "User e-mail")
	nombre    = flag.String("nombre", env("NOMBRE", "Usuario Demo"), "User display name")
	pass      = flag.String("pass", env("PASSWORD", "hunter2hunter2"), "User password")
	nReports  = flag.Int("reportes", envInt("REPORTES", 25), "How many reports to create")
	nNoticias = flag.Int("noticias", envInt("NOTICIAS", 10), "How many news items to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscan(v, &i)
		if err != nil {
			return def
		}
		if i > 0 {
			return i
		}
	}
	return def
}

// ----------------------------------------------------------------------------
// HTTP helpers ---------------------------------------------------------------
func postJSON(path string, body any) (*http.Response, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, *baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func must(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

// ----------------------------------------------------------------------------
// Main -----------------------------------------------------------------------
func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Init account %s (reportes=%d, noticias=%d) on %s\n", *email, *nReports, *nNoticias, *baseURL)

	usuarioID, err := ensureUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	if err := createReports(usuarioID, *nReports); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	if err := createNoticias(*nNoticias); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	fmt.Println("✔ done")
}

// ----------------------------------------------------------------------------
// Step 1 – make sure the user exists -----------------------------------------
func ensureUser() (string, error) {
	type authResp struct {
		UsuarioID string `json:"usuarioId"`
	}

	// Try registration first …
	register := map[string]string{"nombre": *nombre, "email": *email, "password": *pass}
	if resp, err := postJSON("/register", register); err == nil && resp.StatusCode < 300 {
		var r authResp
		_ = json.Unmarshal(must(resp.Body), &r)
		fmt.Println("• registered new user")
		return r.UsuarioID, nil
	}

	// … otherwise fall back to login.
	login := map[string]string{"email": *email, "password": *pass}
	resp, err := postJSON("/login", login)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed (%d): %s", resp.StatusCode, must(resp.Body))
	}
	var r authResp
	_ = json.Unmarshal(must(resp.Body), &r)
	fmt.Println("• logged-in existing user")
	return r.UsuarioID, nil
}

// ----------------------------------------------------------------------------
// Step 2 – create reports ----------------------------------------------------
func createReports(usuarioID string, total int) error {
	for i := 1; i <= total; i++ {
		form := fmt.Sprintf("usuarioId=%s&lat=%f&lng=%f",
			usuarioID, gofakeit.Latitude(), gofakeit.Longitude())

		req, _ := http.NewRequest(http.MethodPost, *baseURL+"/api/reportes", bytes.NewReader([]byte(form)))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("create report %d failed (%d): %s", i, resp.StatusCode, must(resp.Body))
		}

		if i%10 == 0 || i == total {
			fmt.Printf("  … reportes %d/%d\n", i, total)
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Step 3 – create news items -------------------------------------------------
func createNoticias(total int) error {
	for i := 1; i <= total; i++ {
		noticia := map[string]string{
			"titulo":    gofakeit.Sentence(4),
			"resumen":   gofakeit.Sentence(8),
			"contenido": gofakeit.Paragraph(1, 3, 40, " "),
		}

		resp, err := postJSON("/api/noticias", noticia)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("create noticia %d failed (%d): %s", i, resp.StatusCode, must(resp.Body))
		}

		if i%10 == 0 || i == total {
			fmt.Printf("  … noticias %d/%d\n", i, total)
		}
	}
	return nil
}
