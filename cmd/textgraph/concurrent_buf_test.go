package main

import "sync"

// concurrentBuf lets output be written by the watcher while a test reads it.
type concurrentBuf struct {
	msg string
	m   sync.Mutex
}

func (e *concurrentBuf) Write(p []byte) (n int, err error) {
	e.m.Lock()
	defer e.m.Unlock()
	e.msg += string(p)
	return len(p), nil
}

func (e *concurrentBuf) Close() error {
	return nil
}

func (e *concurrentBuf) Read() string {
	e.m.Lock()
	defer e.m.Unlock()
	return e.msg
}
