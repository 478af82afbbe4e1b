/*
Package errors implements custom error interfaces for bazaar.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Extensions register their
own root errors with Register(code, description), picking a code range that
no other extension uses. x/market is a good package to look at in terms of
usage.

For reusing errors use ErrXyz.New and ErrXyz.Newf, or Wrap/Wrapf an error
returned by a lower layer. Test for an error kind with ErrXyz.Is(err), which
unwraps all layers.

There is also support for stacktraces. The innermost Wrap attaches a stack
trace, so create errors at the point of failure and not as global values.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
	%s is just the error message
	%+v is the message followed by the full stack trace
*/
package errors
