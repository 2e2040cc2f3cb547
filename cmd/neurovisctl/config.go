package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	nvapi "neurovis/pkg/neurovis"
)

func loadTrainRequestFromConfig(path string) (nvapi.TrainRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nvapi.TrainRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nvapi.TrainRequest{}, err
	}

	var req nvapi.TrainRequest
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asFloat64(raw["learning_rate"]); ok {
		req.LearningRate = v
	}
	if v, ok := asInt(raw["max_epochs"]); ok {
		req.MaxEpochs = v
	}
	if v, ok := asString(raw["threshold"]); ok {
		req.Threshold = v
	}

	for key := range raw {
		switch key {
		case "seed", "learning_rate", "max_epochs", "threshold":
		default:
			return nvapi.TrainRequest{}, fmt.Errorf("unknown config key: %s", key)
		}
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat64(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
