package runner

import (
	"fmt"
	"path"

	"github.com/aholstenson/aget/pkg/outputs"
	"github.com/aholstenson/aget/pkg/outputs/singlefile"
	"github.com/aholstenson/aget/pkg/outputs/warc"
)

var newWARCOutput = func(directory string, opts ...warc.Option) (outputs.Output, error) {
	output, err := warc.NewOutput(directory, opts...)
	if err != nil {
		return nil, err
	}
	return output, nil
}

// newOutputs creates the outputs requested on the command line. Files are
// named using prefix. Outputs created before a failure are closed.
func (cli *CLI) newOutputs(prefix string) (outputs.Multi, error) {
	result := outputs.Multi{}
	fail := func(err error) (outputs.Multi, error) {
		_ = result.Close()
		return nil, err
	}

	if cli.WARC != "" {
		output, err := newWARCOutput(cli.WARC, warc.WithPrefix(prefix))
		if err != nil {
			return fail(fmt.Errorf("could not create WARC output: %w", err))
		}

		result = append(result, output)
	}

	if cli.SingleFile != "" {
		filename := cli.SingleFile

		isDir, err := IsDir(filename)
		if err != nil {
			return fail(fmt.Errorf("could not check if %q is a directory: %w", filename, err))
		}

		if isDir {
			filename = path.Join(filename, prefix+"page")
		} else {
			directory := path.Dir(filename)
			isParentDir, err := IsDir(directory)
			if err != nil {
				return fail(fmt.Errorf("could not check if %q is a directory: %w", directory, err))
			} else if !isParentDir {
				return fail(fmt.Errorf("%q must be an existing directory", directory))
			}
		}

		output, err := singlefile.NewOutput(filename)
		if err != nil {
			return fail(fmt.Errorf("could not create single file output: %w", err))
		}

		result = append(result, output)
	}

	return result, nil
}
