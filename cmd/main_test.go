package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionSecretKey, sessionTTLSecond,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %s %s %s", appHost, appPort, logLevel)
	}
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "thingboard" {
		t.Errorf("unexpected postgres config: %s %d %s %s %s", pgHost, pgPort, pgUser, pgPassword, pgDB)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres pool config: %d %d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" {
		t.Errorf("unexpected redis config: %s %d %d %q", redisHost, redisPort, redisDB, redisPassword)
	}
	if sessionSecretKey != "my_super_secret_key" || sessionTTLSecond != 86400 {
		t.Errorf("unexpected session config: %q %d", sessionSecretKey, sessionTTLSecond)
	}
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()

	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_PORT", "15432")
	os.Setenv("SESSION_SECRET_KEY", "other-secret")
	os.Setenv("SESSION_TTL_SECOND", "60")

	_, appPort, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		sessionSecretKey, sessionTTLSecond,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "9090" {
		t.Errorf("expected app port 9090, got %s", appPort)
	}
	if pgPort != 15432 {
		t.Errorf("expected postgres port 15432, got %d", pgPort)
	}
	if sessionSecretKey != "other-secret" || sessionTTLSecond != 60 {
		t.Errorf("unexpected session config: %q %d", sessionSecretKey, sessionTTLSecond)
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()

	os.Setenv("SESSION_TTL_SECOND", "not-a-number")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		err := parseConfig("does-not-exist.env")
	if err == nil {
		t.Error("expected error for invalid SESSION_TTL_SECOND")
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	printBuildInfo()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if !bytes.Contains(buf.Bytes(), []byte("Starting service version")) {
		t.Errorf("unexpected build info output: %s", buf.String())
	}
}
