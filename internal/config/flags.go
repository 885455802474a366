package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a stub server listen address in format [host]:[port]
//	-u/-server-url PDF server base URL used by the client
//	-o download directory
//	-d directory the file picker starts in
//	-log-file client log file
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size stub server request body limit in bytes
//	-fail-status stub server forced failure status
//	-fail-message stub server forced failure message
//	-c/-config JSON or TOML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverURL string
	var downloadDir, startDir, logFile string
	var configPath string
	var requestTimeout time.Duration
	var maxUploadSize int64
	var failStatus int
	var failMessage string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Stub server listen address host:port")
	fs.StringVar(&serverURL, "u", "", "PDF server base URL")
	fs.StringVar(&serverURL, "server-url", "", "PDF server base URL (alias)")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.StringVar(&startDir, "d", "", "File picker start directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&configPath, "c", "", "Config file path (.json or .toml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max accepted upload size in bytes")
	fs.IntVar(&failStatus, "fail-status", 0, "Force every stub endpoint to fail with this status")
	fs.StringVar(&failMessage, "fail-message", "", "Error message sent with -fail-status")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StartDir: startDir,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DownloadDir: downloadDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Stub: Stub{
			FailStatus:  failStatus,
			FailMessage: failMessage,
		},
		ConfigFilePath: configPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "pdf-desk"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
