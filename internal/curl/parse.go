package curl

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

// valueFlags take an argument that has no bearing on completion.
// They are consumed so their argument is not mistaken for the URL.
var valueFlags = map[string]bool{
	"-o": true, "--output": true,
	"-u": true, "--user": true,
	"-A": true, "--user-agent": true,
	"-b": true, "--cookie": true,
	"-c": true, "--cookie-jar": true,
	"-e": true, "--referer": true,
	"-m": true, "--max-time": true,
	"-x": true, "--proxy": true,
	"-w": true, "--write-out": true,
	"-F": true, "--form": true,
	"-T": true, "--upload-file": true,
	"--connect-timeout": true,
	"--retry":           true,
	"--cacert":          true,
	"--cert":            true,
	"--key":             true,
	"--resolve":         true,
}

// shortValueFlags may carry their argument attached, as in -XPOST
var shortValueFlags = map[string]bool{
	"-X": true, "-H": true, "-d": true,
	"-o": true, "-u": true, "-A": true, "-b": true, "-c": true,
	"-e": true, "-m": true, "-x": true, "-w": true, "-F": true, "-T": true,
}

// Parse parses a single curl command.
// The command must start with the word "curl" and name a URL.
func Parse(command string) (*Request, error) {
	words, err := shellwords.Parse(strings.ReplaceAll(command, "\\\n", " "))
	if err != nil {
		return nil, derrors.NewCurlParseError(command, "failed to split curl command", err)
	}
	if len(words) == 0 || words[0] != "curl" {
		return nil, derrors.NewCurlParseError(command, "not a curl command", nil)
	}

	var (
		method  string
		rawURL  string
		bodies  []string
		get     bool
		headers [][2]string
		fields  [][2]string
	)

	for i := 1; i < len(words); i++ {
		flag, value, attached := splitShortFlag(words[i])

		argument := func() (string, error) {
			if attached {
				return value, nil
			}
			if i+1 >= len(words) {
				return "", derrors.NewCurlParseError(command, fmt.Sprintf("option %s requires an argument", flag), nil)
			}
			i++
			return words[i], nil
		}

		switch flag {
		case "-X", "--request":
			v, err := argument()
			if err != nil {
				return nil, err
			}
			method = v
		case "-H", "--header":
			v, err := argument()
			if err != nil {
				return nil, err
			}
			if name, val, ok := splitHeader(v); ok {
				headers = append(headers, [2]string{name, val})
			}
		case "-d", "--data", "--data-raw", "--data-binary", "--data-ascii":
			v, err := argument()
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, v)
		case "--data-urlencode":
			v, err := argument()
			if err != nil {
				return nil, err
			}
			name, val, _ := strings.Cut(v, "=")
			fields = append(fields, [2]string{name, val})
		case "-G", "--get":
			get = true
		case "--url":
			v, err := argument()
			if err != nil {
				return nil, err
			}
			rawURL = v
		default:
			if valueFlags[flag] {
				if _, err := argument(); err != nil {
					return nil, err
				}
				continue
			}
			if strings.HasPrefix(flag, "-") {
				// Unknown switch
				continue
			}
			if rawURL == "" {
				rawURL = flag
			}
		}
	}

	if rawURL == "" {
		return nil, derrors.NewCurlParseError(command, "no URL given", nil)
	}

	body := strings.Join(bodies, "&")
	if method == "" {
		method = "GET"
		if body != "" && !get {
			method = "POST"
		}
	}

	req, err := NewRequest(method, rawURL)
	if err != nil {
		return nil, derrors.NewCurlParseError(command, "invalid URL", err)
	}

	for _, h := range headers {
		req.SetHeader(h[0], h[1])
	}
	for _, f := range fields {
		req.SetField(f[0], f[1])
	}
	req.Body = body

	return req, nil
}

// splitShortFlag splits an attached short option such as -XPOST into its
// flag and value.
func splitShortFlag(word string) (flag, value string, attached bool) {
	if len(word) > 2 && word[0] == '-' && word[1] != '-' && shortValueFlags[word[:2]] {
		return word[:2], word[2:], true
	}
	return word, "", false
}

// splitHeader splits "Name: value". A header without a colon is dropped.
func splitHeader(v string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(v, ":")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", false
	}
	return HeaderKey(name), strings.TrimSpace(value), true
}
