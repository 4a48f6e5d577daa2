package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/9seconds/geochain/geolib"
)

func runLocate(ctx context.Context, w io.Writer, batch *geolib.BatchLocator, args []string) error {
	ips := make([]geolib.IP, 0, len(args))

	for _, v := range args {
		ip, err := geolib.ParseIP(v)
		if err != nil {
			fmt.Fprintf(w, "Incorrect IP address: %s\n", v)

			continue
		}

		ips = append(ips, ip)
	}

	if len(ips) == 0 {
		return nil
	}

	results, err := batch.LocateAll(ctx, ips)
	if err != nil {
		return fmt.Errorf("cannot locate addresses: %w", err)
	}

	for _, v := range results {
		printResult(w, v)
	}

	return nil
}

func printResult(w io.Writer, result geolib.BatchResult) {
	if !result.OK() {
		fmt.Fprintf(w, "Info about IP: %s not found\n", result.IP)

		return
	}

	loc := result.Location

	fmt.Fprintln(w, loc.Country)
	fmt.Fprintln(w, loc.City)
	fmt.Fprintln(w, loc.Zip)
	fmt.Fprintln(w, strconv.FormatFloat(loc.Point.Lat, 'f', -1, 64))
	fmt.Fprintln(w, strconv.FormatFloat(loc.Point.Lng, 'f', -1, 64))
	fmt.Fprintln(w)
}
