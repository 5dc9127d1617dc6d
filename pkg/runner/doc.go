/*
Package runner drives a machine to completion.

It provides two decorators over any ports.Machine:

  - Counter: counts the steps that reached the wrapped machine.
  - Limiter: rejects once a step budget is exceeded, so a looping machine halts.

Execute combines both and honors context cancellation between steps, which is
how the CLI stops an unbounded run on Ctrl+C:

	sm := runner.NewSignalManager()
	defer sm.Stop()

	res, err := runner.Execute(sm.Context(), engine, runner.WithLimit(10_000))
	if err != nil {
		return err
	}
	fmt.Println(res.Accepted, res.Steps)
*/
package runner
