// Command clinicctl signs in to a running clinic API and keeps the session
// in a local file between invocations.
//
//	clinicctl login <email> <password>
//	clinicctl whoami
//	clinicctl refresh
//	clinicctl logout
//	clinicctl watch
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"therapy-clinic-api/config"
	"therapy-clinic-api/pkg/session"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const watchPollInterval = time.Second

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg := config.LoadClientConfig(viper.New(), defaultSessionFile())

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]

	manager := session.NewManager(
		session.NewHTTPProvider(cfg.APIURL, nil),
		session.NewFileStorage(cfg.SessionFile),
		log,
		session.Config{
			RefreshInterval: cfg.RefreshInterval,
			AutoRefresh:     cmd == "watch",
		},
	)
	defer manager.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, manager, cmd, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		manager.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, m *session.Manager, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: clinicctl login <email> <password>")
		}
		if !m.Login(ctx, args[0], args[1]) {
			return fmt.Errorf("login failed: %s", m.State().Error)
		}
		printUser(m.State().User)
	case "whoami":
		m.RestoreSession(ctx)
		state := m.State()
		if !state.IsAuthenticated {
			return fmt.Errorf("not signed in")
		}
		printUser(state.User)
	case "refresh":
		m.RestoreSession(ctx)
		if !m.RefreshToken(ctx) {
			return fmt.Errorf("refresh failed: %s", m.State().Error)
		}
		fmt.Printf("token valid until %s\n", m.State().Token.ExpiresAt.Format(time.RFC3339))
	case "logout":
		m.RestoreSession(ctx)
		m.Logout()
	case "watch":
		m.RestoreSession(ctx)
		if !m.State().IsAuthenticated {
			return fmt.Errorf("not signed in")
		}
		printUser(m.State().User)
		return watch(ctx, m, watchPollInterval)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// watch keeps the stored session fresh until interrupted or until the
// session ends on its own.
func watch(ctx context.Context, m *session.Manager, poll time.Duration) error {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if state := m.State(); !state.IsAuthenticated {
				return fmt.Errorf("session ended: %s", state.Error)
			}
		}
	}
}

func printUser(u *session.User) {
	if u == nil {
		return
	}
	fmt.Printf("%s %s <%s> (%s)\n", u.Name, u.Lastname, u.Email, u.Role)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clinicctl login <email> <password> | whoami | refresh | logout | watch")
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".clinic-session.json"
	}
	return filepath.Join(dir, "clinicctl", "session.json")
}
