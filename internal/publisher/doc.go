// Package publisher links a generated repository to a remote and pushes it.
//
// Publishing is three git calls: remote add origin, branch -M main and
// push -u origin main. Any failure is returned as *errors.PublishError naming
// the step; the local commits are never touched.
package publisher
