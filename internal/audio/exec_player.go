package audio

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/napstack/napstack/internal/domain"
)

// ExecPlayer loops each channel through an external command-line player,
// one process per active sound. Volume changes restart running channels.
type ExecPlayer struct {
	// Command is the player binary, e.g. "ffplay".
	Command string
	// Dir holds the audio files named by domain.Sound.Source.
	Dir     string
	Logger  *slog.Logger

	mu      sync.Mutex
	running map[string]*exec.Cmd
	sounds  map[string]domain.Sound
}

// NewExecPlayer returns a player for command if it is on PATH and dir exists.
func NewExecPlayer(command, dir string, logger *slog.Logger) (*ExecPlayer, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("finding audio player %s: %w", command, err)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("sound directory %s not found", dir)
	}
	return &ExecPlayer{
		Command: path,
		Dir:     dir,
		Logger:  logger,
		running: make(map[string]*exec.Cmd),
		sounds:  make(map[string]domain.Sound),
	}, nil
}

func (p *ExecPlayer) Play(s domain.Sound, volume int) error {
	if s.Source == "" {
		return ErrNoSource
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(s.ID)
	return p.startLocked(s, volume)
}

func (p *ExecPlayer) Stop(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(id)
	delete(p.sounds, id)
	return nil
}

func (p *ExecPlayer) SetVolume(volume int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for id, s := range p.sounds {
		p.stopLocked(id)
		if err := p.startLocked(s, volume); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *ExecPlayer) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id := range p.running {
		p.stopLocked(id)
	}
	clear(p.sounds)
}

// args builds an ffplay-compatible invocation.
func (p *ExecPlayer) args(s domain.Sound, volume int) []string {
	return []string{
		"-nodisp", "-loglevel", "quiet", "-loop", "0",
		"-volume", strconv.Itoa(volume),
		filepath.Join(p.Dir, s.Source),
	}
}

func (p *ExecPlayer) startLocked(s domain.Sound, volume int) error {
	cmd := exec.Command(p.Command, p.args(s, volume)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", s.ID, err)
	}
	p.running[s.ID] = cmd
	p.sounds[s.ID] = s
	go func() {
		if err := cmd.Wait(); err != nil && p.Logger != nil {
			p.Logger.Debug("audio_process_exit", "sound", s.ID, "error", err.Error())
		}
	}()
	return nil
}

func (p *ExecPlayer) stopLocked(id string) {
	cmd, ok := p.running[id]
	if !ok {
		return
	}
	delete(p.running, id)
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}
