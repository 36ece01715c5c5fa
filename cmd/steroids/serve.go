package main

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/spf13/cobra"

	"github.com/arcadeworks/steroids/internal/draw"
	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
	"github.com/arcadeworks/steroids/internal/loop"
	"github.com/arcadeworks/steroids/internal/rules"
	"github.com/arcadeworks/steroids/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server for remote play",
	Long: `Start an SSH server. Every connecting client gets their own game on
their own PTY; scores land in the shared score table under the SSH
user name.

Example:
  steroids serve
  ssh -p 2222 player@localhost`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "steroids-ssh",
	})

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, levels, err := loadGameData(cfg)
	if err != nil {
		return err
	}

	var store *storage.Store
	if store, err = storage.Open(cfg.Scores.Path); err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	bounds := geometry.Bounds{Width: cfg.Screen.Width, Height: cfg.Screen.Height}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			gameMiddleware(logger, catalog, levels, bounds, store),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Disable Nagle so input reaches the game without batching.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", cfg.SSH.Host, "port", cfg.SSH.Port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "error", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// gameMiddleware runs one game per SSH session on the session's PTY.
func gameMiddleware(logger *log.Logger, catalog *entity.Catalog, levels []rules.Level, bounds geometry.Bounds, store *storage.Store) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("new game session",
				"user", sess.User(), "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			var onGameOver func(score, level int)
			if store != nil {
				player := sess.User()
				onGameOver = func(score, level int) {
					if _, err := store.SaveScore(player, score, level); err != nil {
						logger.Warn("could not save score", "user", player, "error", err)
					}
				}
			}

			err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
				Catalog:    catalog,
				Levels:     levels,
				Bounds:     bounds,
				Seed:       flagSeed,
				TermSize:   sizeTracker.getSize,
				PlayerName: sess.User(),
				OnGameOver: onGameOver,
			})
			if err != nil {
				logger.Error("game error", "user", sess.User(), "error", err)
			}

			logger.Info("session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
