package util

import (
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/cashapp/sysident/errors"
)

// Descendants returns the PIDs of every live process below "pid", deepest first.
func Descendants(pid int) ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	children := map[int][]int{}
	for _, p := range procs {
		children[p.PPid()] = append(children[p.PPid()], p.Pid())
	}
	var out []int
	var walk func(int)
	walk = func(parent int) {
		for _, child := range children[parent] {
			if child == parent {
				continue
			}
			walk(child)
			out = append(out, child)
		}
	}
	walk(pid)
	return out, nil
}

// KillProcessTree forcibly terminates "pid" and all of its descendants.
//
// Descendants are collected before anything is killed so that orphans
// reparented to init are not missed.
func KillProcessTree(pid int) error {
	descendants, err := Descendants(pid)
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	if err := killGroup(pid); err != nil {
		errs = append(errs, err)
	}
	for _, child := range descendants {
		_ = killPID(child)
	}
	if err := killPID(pid); err != nil && !errors.Is(err, os.ErrProcessDone) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func killPID(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return errors.WithStack(err)
	}
	return proc.Kill()
}
