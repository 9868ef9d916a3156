package config

import (
	"os"
	"strconv"
)

const (
	soundCommandEnv = "SOUND_COMMAND"
	soundFileEnv    = "SOUND_FILE"
	soundVolumeEnv  = "SOUND_VOLUME"

	defaultSoundVolume = 0.7
)

type SoundConfig struct {
	Command string
	File    string
	Volume  float64
}

func LoadSoundConfig() (*SoundConfig, error) {
	volume := defaultSoundVolume
	if v := os.Getenv(soundVolumeEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return nil, ErrInvalidSoundVolume
		}
		volume = parsed
	}

	return &SoundConfig{
		Command: os.Getenv(soundCommandEnv),
		File:    os.Getenv(soundFileEnv),
		Volume:  volume,
	}, nil
}
