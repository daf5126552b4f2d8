package main

import "github.com/tanema/gween"

// Action hooks callbacks onto a running tween.
type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// runTweens advances every tween by dt seconds and drops the finished ones.
func runTweens(tweens map[*gween.Tween]*Action, dt float32) {
	for t, a := range tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(tweens, t)
		}
	}
}
