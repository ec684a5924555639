package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
	"github.com/oomph-ac/museum/input"
	"github.com/oomph-ac/museum/movement"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Settings contains everything about the walkthrough that can be configured from a file.
type Settings struct {
	Movement struct {
		// MoveSpeed is the distance walked per frame.
		MoveSpeed float32
		// VerticalSpeed is the distance ascended or descended per frame. Zero uses MoveSpeed.
		VerticalSpeed float32
		// RotationSpeed is the amount of radians turned per unit of pointer movement.
		RotationSpeed     float32
		NormalizeDiagonal bool
		// CollisionResponse is either "discard" or "slide".
		CollisionResponse string
		StairsOnly        bool
	}
	Viewer struct {
		EyeHeight        float32
		BodyHeight       float32
		CollisionRadius  float32
		CeilingClearance float32
		InteractDistance float32
		LookDistance     float32
		Spawn            [3]float32
		SpawnYaw         float32
	}
	Input struct {
		// Keys binds key names to action names.
		Keys map[string]string
	}
	Loop struct {
		// FrameRate is the amount of frames simulated per second.
		FrameRate int
	}
	Debug struct {
		Enabled  bool
		LogLevel string
	}
}

// DefaultSettings returns the default settings of the walkthrough.
func DefaultSettings() Settings {
	s := Settings{}
	def := movement.DefaultConfig()

	s.Movement.MoveSpeed = def.MoveSpeed
	s.Movement.RotationSpeed = def.RotationSpeed
	s.Movement.CollisionResponse = def.Response.String()

	s.Viewer.EyeHeight = def.EyeHeight
	s.Viewer.BodyHeight = def.BodyHeight
	s.Viewer.CollisionRadius = def.CollisionRadius
	s.Viewer.CeilingClearance = def.CeilingClearance
	s.Viewer.InteractDistance = def.InteractDistance
	s.Viewer.LookDistance = def.LookDistance
	s.Viewer.Spawn = [3]float32{0, game.DefaultEyeHeight, 12}

	s.Input.Keys = input.DefaultKeymap().Strings()
	s.Loop.FrameRate = 60
	s.Debug.LogLevel = logrus.InfoLevel.String()
	return s
}

// MovementConfig returns the configuration of the locomotion core described by the settings.
func (s Settings) MovementConfig() (movement.Config, error) {
	response, err := movement.ParseCollisionResponse(s.Movement.CollisionResponse)
	if err != nil {
		return movement.Config{}, err
	}
	cfg := movement.Config{
		MoveSpeed:         s.Movement.MoveSpeed,
		VerticalSpeed:     s.Movement.VerticalSpeed,
		RotationSpeed:     s.Movement.RotationSpeed,
		EyeHeight:         s.Viewer.EyeHeight,
		BodyHeight:        s.Viewer.BodyHeight,
		CollisionRadius:   s.Viewer.CollisionRadius,
		CeilingClearance:  s.Viewer.CeilingClearance,
		InteractDistance:  s.Viewer.InteractDistance,
		LookDistance:      s.Viewer.LookDistance,
		Spawn:             mgl32.Vec3(s.Viewer.Spawn),
		SpawnYaw:          s.Viewer.SpawnYaw,
		NormalizeDiagonal: s.Movement.NormalizeDiagonal,
		Response:          response,
		StairsOnly:        s.Movement.StairsOnly,
		Debug:             s.Debug.Enabled,
	}
	return cfg, cfg.Validate()
}

// Keymap returns the key bindings of the settings. The default bindings are used if none are set.
func (s Settings) Keymap() (input.Keymap, error) {
	if len(s.Input.Keys) == 0 {
		return input.DefaultKeymap(), nil
	}
	return input.ParseKeymap(s.Input.Keys)
}

// LogLevel returns the log level of the settings. Debug mode forces at least the debug level.
func (s Settings) LogLevel() (logrus.Level, error) {
	level := logrus.InfoLevel
	if s.Debug.LogLevel != "" {
		l, err := logrus.ParseLevel(s.Debug.LogLevel)
		if err != nil {
			return 0, err
		}
		level = l
	}
	if s.Debug.Enabled && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	// Bindings in the file replace the default ones rather than being merged with them.
	settings.Input.Keys = nil
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if len(settings.Input.Keys) == 0 {
		settings.Input.Keys = input.DefaultKeymap().Strings()
	}
	return settings, nil
}
